package constants

import "testing"

func TestCanTransitionReservation(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", ReservationStatusPending, ReservationStatusConfirmed, true},
		{"pending to cancelled", ReservationStatusPending, ReservationStatusCancelled, true},
		{"confirmed to checked in", ReservationStatusConfirmed, ReservationStatusCheckedIn, true},
		{"confirmed to cancelled", ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{"checked in to checked out", ReservationStatusCheckedIn, ReservationStatusCheckedOut, true},
		{"pending straight to checked out", ReservationStatusPending, ReservationStatusCheckedOut, false},
		{"pending straight to checked in", ReservationStatusPending, ReservationStatusCheckedIn, false},
		{"checked in to cancelled", ReservationStatusCheckedIn, ReservationStatusCancelled, false},
		{"checked out is terminal", ReservationStatusCheckedOut, ReservationStatusConfirmed, false},
		{"cancelled is terminal", ReservationStatusCancelled, ReservationStatusPending, false},
		{"no self transition", ReservationStatusPending, ReservationStatusPending, false},
		{"unknown source", "unknown", ReservationStatusConfirmed, false},
		{"unknown target", ReservationStatusPending, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionReservation(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionReservation(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestFullLifecycle(t *testing.T) {
	chain := []string{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCheckedIn,
		ReservationStatusCheckedOut,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !CanTransitionReservation(chain[i], chain[i+1]) {
			t.Errorf("expected %s -> %s to be legal", chain[i], chain[i+1])
		}
	}
}

func TestIsValidReservationStatus(t *testing.T) {
	for _, s := range []string{
		ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut,
	} {
		if !IsValidReservationStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidReservationStatus("archived") {
		t.Error("expected archived to be invalid")
	}
	if IsValidReservationStatus("") {
		t.Error("expected empty status to be invalid")
	}
}

func TestIsActiveReservationStatus(t *testing.T) {
	if !IsActiveReservationStatus(ReservationStatusConfirmed) {
		t.Error("confirmed should block the room")
	}
	if !IsActiveReservationStatus(ReservationStatusCheckedIn) {
		t.Error("checked_in should block the room")
	}
	if IsActiveReservationStatus(ReservationStatusPending) {
		t.Error("pending must not block the room")
	}
	if IsActiveReservationStatus(ReservationStatusCancelled) {
		t.Error("cancelled must not block the room")
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []string{
		PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash,
		PaymentMethodMobilePayment, PaymentMethodBankTransfer,
	} {
		if !IsValidPaymentMethod(m) {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if IsValidPaymentMethod("crypto") {
		t.Error("expected crypto to be invalid")
	}
}
