package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

func date(s string) time.Time {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "2025-01-10", "2025-01-12", "2025-01-11", "2025-01-13", true},
		{"contained range", "2025-01-10", "2025-01-20", "2025-01-12", "2025-01-14", true},
		{"identical range", "2025-01-10", "2025-01-12", "2025-01-10", "2025-01-12", true},
		{"back to back stays", "2025-01-10", "2025-01-12", "2025-01-12", "2025-01-14", false},
		{"reversed back to back", "2025-01-12", "2025-01-14", "2025-01-10", "2025-01-12", false},
		{"disjoint", "2025-01-10", "2025-01-12", "2025-02-01", "2025-02-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			if got != tt.want {
				t.Errorf("RangesOverlap(%s..%s, %s..%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestRangesOverlapSymmetry(t *testing.T) {
	a1, a2 := date("2025-05-01"), date("2025-05-05")
	b1, b2 := date("2025-05-04"), date("2025-05-08")
	if RangesOverlap(a1, a2, b1, b2) != RangesOverlap(b1, b2, a1, a2) {
		t.Error("overlap must be symmetric")
	}
}

// sqlRecorder captures the SQL gorm builds so statement shape and order can
// be asserted without a database.
type sqlRecorder struct {
	sqls []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface              { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})          {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})          {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{})         {}
func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.sqls = append(r.sqls, sql)
}

func dryRunDB(t *testing.T, rec *sqlRecorder) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun: true,
		Logger: rec,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func indexContaining(sqls []string, substrs ...string) int {
	for i, sql := range sqls {
		upper := strings.ToUpper(sql)
		all := true
		for _, sub := range substrs {
			if !strings.Contains(upper, strings.ToUpper(sub)) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

func TestLockRoomForBookingTakesRowLock(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	if _, err := lockRoomForBooking(db, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if indexContaining(rec.sqls, "rooms", "FOR UPDATE") < 0 {
		t.Errorf("room lookup must lock the row, got %v", rec.sqls)
	}
}

func TestActivationLocksRoomBeforeOverlapCheck(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	reservation := models.Reservation{
		ID:       1,
		RoomID:   2,
		CheckIn:  date("2025-01-10"),
		CheckOut: date("2025-01-12"),
		Status:   constants.ReservationStatusPending,
	}
	if err := applyTransitionTx(db, &reservation, constants.ReservationStatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lockIdx := indexContaining(rec.sqls, "rooms", "FOR UPDATE")
	overlapIdx := indexContaining(rec.sqls, "reservations", "count")
	if lockIdx < 0 {
		t.Fatalf("activation must lock the room row, got %v", rec.sqls)
	}
	if overlapIdx < 0 {
		t.Fatalf("activation must re-check overlapping stays, got %v", rec.sqls)
	}
	if lockIdx > overlapIdx {
		t.Errorf("room lock (stmt %d) must precede the overlap count (stmt %d)", lockIdx, overlapIdx)
	}
}

func TestDeactivationSkipsRoomLock(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	reservation := models.Reservation{
		ID:       1,
		RoomID:   2,
		CheckIn:  date("2025-01-10"),
		CheckOut: date("2025-01-12"),
		Status:   constants.ReservationStatusCheckedIn,
	}
	if err := applyTransitionTx(db, &reservation, constants.ReservationStatusCheckedOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.Status != constants.ReservationStatusCheckedOut {
		t.Errorf("status = %q, want checked_out", reservation.Status)
	}

	if idx := indexContaining(rec.sqls, "rooms", "FOR UPDATE"); idx >= 0 {
		t.Errorf("check-out must not take the booking lock, got %v", rec.sqls)
	}
}

func TestApplyTransitionRejectsIllegalMove(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	reservation := models.Reservation{ID: 1, RoomID: 2, Status: constants.ReservationStatusPending}
	err := applyTransitionTx(db, &reservation, constants.ReservationStatusCheckedOut)
	if err == nil {
		t.Fatal("pending straight to checked_out must be rejected")
	}
	if len(rec.sqls) != 0 {
		t.Errorf("an illegal transition must not touch the database, got %v", rec.sqls)
	}
}

func TestAddReservationServiceRejectsNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		_, err := AddReservationService(nil, 1, 1, quantity, nil)
		if err == nil {
			t.Fatalf("quantity %d should be rejected", quantity)
		}
		appErr, ok := err.(*apperrors.AppError)
		if !ok {
			t.Fatalf("quantity %d: expected *errors.AppError, got %T", quantity, err)
		}
		if appErr.Code != apperrors.ErrCodeValidation {
			t.Errorf("quantity %d: code = %s, want %s", quantity, appErr.Code, apperrors.ErrCodeValidation)
		}
	}
}
