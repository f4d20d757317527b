package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

func TestComputeReservationTotal(t *testing.T) {
	tests := []struct {
		name            string
		nights          int
		pricePerNight   float64
		charges         []ServiceCharge
		wantRoom        float64
		wantService     float64
		wantTotal       float64
	}{
		{
			name:          "room only",
			nights:        2,
			pricePerNight: 100,
			wantRoom:      200,
			wantTotal:     200,
		},
		{
			name:          "room plus services",
			nights:        3,
			pricePerNight: 80,
			charges: []ServiceCharge{
				{UnitPrice: 15, Quantity: 2},
				{UnitPrice: 40, Quantity: 1},
			},
			wantRoom:    240,
			wantService: 70,
			wantTotal:   310,
		},
		{
			name:          "zero quantity counts as one",
			nights:        1,
			pricePerNight: 50,
			charges:       []ServiceCharge{{UnitPrice: 10, Quantity: 0}},
			wantRoom:      50,
			wantService:   10,
			wantTotal:     60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, service, total := ComputeReservationTotal(tt.nights, tt.pricePerNight, tt.charges)
			if room != tt.wantRoom || service != tt.wantService || total != tt.wantTotal {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)",
					room, service, total, tt.wantRoom, tt.wantService, tt.wantTotal)
			}
		})
	}
}

func TestApplySettle(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	payment := models.Payment{Status: constants.PaymentStatusPending}
	if err := ApplySettle(&payment, "tx-123", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != constants.PaymentStatusCompleted {
		t.Errorf("status = %q, want completed", payment.Status)
	}
	if payment.TransactionID != "tx-123" {
		t.Errorf("transaction id = %q, want tx-123", payment.TransactionID)
	}
	if payment.PaidAt == nil || !payment.PaidAt.Equal(now) {
		t.Errorf("paid at = %v, want %v", payment.PaidAt, now)
	}
}

func TestApplySettleGeneratesReference(t *testing.T) {
	payment := models.Payment{Status: constants.PaymentStatusPending}
	if err := ApplySettle(&payment, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.TransactionID == "" {
		t.Error("expected a generated transaction reference")
	}
}

func TestApplySettleRejectsNonPending(t *testing.T) {
	for _, status := range []string{
		constants.PaymentStatusCompleted,
		constants.PaymentStatusFailed,
		constants.PaymentStatusRefunded,
	} {
		payment := models.Payment{Status: status}
		err := ApplySettle(&payment, "tx", time.Now())
		if err == nil {
			t.Errorf("settling a %s payment should fail", status)
			continue
		}
		if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeInvalidOperation {
			t.Errorf("expected INVALID_OPERATION for %s, got %v", status, err)
		}
	}
}

func TestApplyRefund(t *testing.T) {
	payment := models.Payment{Status: constants.PaymentStatusCompleted}
	if err := ApplyRefund(&payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != constants.PaymentStatusRefunded {
		t.Errorf("status = %q, want refunded", payment.Status)
	}
}

func TestApplyRefundRejectsNonCompleted(t *testing.T) {
	for _, status := range []string{
		constants.PaymentStatusPending,
		constants.PaymentStatusFailed,
		constants.PaymentStatusRefunded,
	} {
		payment := models.Payment{Status: status}
		if err := ApplyRefund(&payment); err == nil {
			t.Errorf("refunding a %s payment should fail", status)
		}
	}
}
