package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken     ErrorCode = "MISSING_TOKEN"
	ErrCodeRevokedToken     ErrorCode = "REVOKED_TOKEN"
	ErrCodeInvalidPassword  ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists       ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Business errors
	ErrCodeDateRange         ErrorCode = "DATE_RANGE"
	ErrCodeRoomUnavailable   ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidService    ErrorCode = "INVALID_SERVICE"
	ErrCodeNotEligible       ErrorCode = "NOT_ELIGIBLE"
	ErrCodeInvalidOperation  ErrorCode = "INVALID_OPERATION"
)

// AppError is the application error carried across service and handler
// boundaries. Code drives the HTTP status mapping at the response layer.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an *AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the *AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room not available")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentRefunded = errors.New("payment already refunded")
	ErrInvalidAmount   = errors.New("invalid amount")
)
