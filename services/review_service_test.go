package services

import (
	stderrors "errors"
	"fmt"
	"testing"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestCheckReviewEligibility(t *testing.T) {
	reservation := &models.Reservation{
		UserID: 7,
		Status: constants.ReservationStatusCheckedOut,
	}

	if err := CheckReviewEligibility(reservation, 7); err != nil {
		t.Errorf("owner of a checked out stay should be eligible, got %v", err)
	}

	err := CheckReviewEligibility(reservation, 8)
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodePermissionDenied {
		t.Errorf("non-owner should get PERMISSION_DENIED, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres 23505", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped postgres 23505", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), true},
		{"other postgres error", &pgconn.PgError{Code: "23503"}, false},
		{"unrelated error", stderrors.New("connection reset"), false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Errorf("%s: isUniqueViolation = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCheckReviewEligibilityRequiresCheckout(t *testing.T) {
	for _, status := range []string{
		constants.ReservationStatusPending,
		constants.ReservationStatusConfirmed,
		constants.ReservationStatusCheckedIn,
		constants.ReservationStatusCancelled,
	} {
		reservation := &models.Reservation{UserID: 7, Status: status}
		err := CheckReviewEligibility(reservation, 7)
		if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeNotEligible {
			t.Errorf("status %s should give NOT_ELIGIBLE, got %v", status, err)
		}
	}
}
