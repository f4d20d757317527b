package services

import (
	"testing"

	"stayhub/dto"
	"stayhub/errors"
)

func TestUpdateUserProfileRejectsBadPhoneBeforeWriting(t *testing.T) {
	rec := &sqlRecorder{}
	db := dryRunDB(t, rec)

	phone := "not-a-phone"
	_, err := UpdateUserProfile(db, 1, dto.UpdateUserRequest{Phone: &phone})
	if err == nil {
		t.Fatal("expected an error for an invalid phone")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidPhone {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeInvalidPhone)
	}

	if len(rec.sqls) != 0 {
		t.Errorf("expected no statements before validation, recorded %v", rec.sqls)
	}
}
