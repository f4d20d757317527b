package validator

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
)

func TestValidateReservationDates(t *testing.T) {
	checkIn, checkOut, err := ValidateReservationDates("2025-01-10", "2025-01-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkIn.Format(constants.DateLayout) != "2025-01-10" {
		t.Errorf("check-in = %v", checkIn)
	}
	if !checkOut.After(checkIn) {
		t.Error("check-out must be after check-in")
	}
	if nights := checkOut.Sub(checkIn) / (24 * time.Hour); nights != 2 {
		t.Errorf("nights = %d, want 2", nights)
	}
}

func TestValidateReservationDatesRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantCode errors.ErrorCode
	}{
		{"same day", "2025-01-10", "2025-01-10", errors.ErrCodeDateRange},
		{"reversed", "2025-01-12", "2025-01-10", errors.ErrCodeDateRange},
		{"bad check-in", "10/01/2025", "2025-01-12", errors.ErrCodeInvalidFormat},
		{"bad check-out", "2025-01-10", "notadate", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateReservationDates(tt.checkIn, tt.checkOut)
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateRegister(t *testing.T) {
	valid := dto.RegisterInput{
		Username: "guest1",
		Email:    "guest@example.com",
		Password: "secret1",
		Phone:    "+12025550123",
	}
	if err := ValidateRegister(&valid); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*dto.RegisterInput)
		wantCode errors.ErrorCode
	}{
		{"empty username", func(i *dto.RegisterInput) { i.Username = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(i *dto.RegisterInput) { i.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"short password", func(i *dto.RegisterInput) { i.Password = "abc" }, errors.ErrCodeValidation},
		{"bad phone", func(i *dto.RegisterInput) { i.Phone = "phone" }, errors.ErrCodeInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := ValidateRegister(&input)
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidatePayment(t *testing.T) {
	if err := ValidatePayment(120.50, constants.PaymentMethodCash); err != nil {
		t.Errorf("valid payment rejected: %v", err)
	}
	if err := ValidatePayment(0, constants.PaymentMethodCash); err == nil {
		t.Error("zero amount should be rejected")
	}
	if err := ValidatePayment(-10, constants.PaymentMethodCash); err == nil {
		t.Error("negative amount should be rejected")
	}
	if err := ValidatePayment(10, "barter"); err == nil {
		t.Error("unknown method should be rejected")
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if err := ValidateRating(rating); err != nil {
			t.Errorf("rating %d rejected: %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1, 100} {
		if err := ValidateRating(rating); err == nil {
			t.Errorf("rating %d should be rejected", rating)
		}
	}
}

func TestValidateRoomType(t *testing.T) {
	if err := ValidateRoomType("Deluxe", 150, 2); err != nil {
		t.Errorf("valid room type rejected: %v", err)
	}
	if err := ValidateRoomType("", 150, 2); err == nil {
		t.Error("empty name should be rejected")
	}
	if err := ValidateRoomType("Deluxe", -1, 2); err == nil {
		t.Error("negative price should be rejected")
	}
	if err := ValidateRoomType("Deluxe", 150, 0); err == nil {
		t.Error("zero occupancy should be rejected")
	}
}

func TestValidatePhone(t *testing.T) {
	if err := ValidatePhone("+84912345678"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	if err := ValidatePhone("12ab34"); err == nil {
		t.Error("invalid phone should be rejected")
	}
}
