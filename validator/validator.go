package validator

import (
	"regexp"
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// ValidateStruct runs struct tag validation on a DTO.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request payload", err)
	}
	return nil
}

// ValidateRegister checks a registration payload beyond the binding tags.
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username must not be empty", nil)
	}
	if !isValidEmail(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if input.Phone != "" && !isValidPhone(input.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}

// ValidateReservationDates parses and checks a check-in/check-out pair.
// The range is half-open: the check-out day is not a night spent.
func ValidateReservationDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constants.DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-in date is not valid", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-out date is not valid", err)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeDateRange, "Check-out must be after check-in", nil)
	}
	return checkIn, checkOut, nil
}

// ValidateRoomType checks room type reference data.
func ValidateRoomType(name string, pricePerNight float64, maxOccupancy int) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type name must not be empty", nil)
	}
	if pricePerNight < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Price per night must not be negative", nil)
	}
	if maxOccupancy < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Max occupancy must be at least 1", nil)
	}
	return nil
}

// ValidateServiceType checks service type reference data.
func ValidateServiceType(name string, price float64) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Service type name must not be empty", nil)
	}
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Price must not be negative", nil)
	}
	return nil
}

// ValidatePayment checks a payment amount and method.
func ValidatePayment(amount float64, method string) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be greater than zero", nil)
	}
	if !constants.IsValidPaymentMethod(method) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Payment method is not supported", nil)
	}
	return nil
}

// ValidateRating checks a review rating.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating must be between 1 and 5", nil)
	}
	return nil
}

// ValidatePhone checks a phone number supplied on its own, outside of
// registration.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}

// isValidEmail reports whether the email has a plausible shape.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone reports whether the phone number has a plausible shape.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}
