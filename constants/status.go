package constants

// Date layout used for check-in/check-out values on the wire.
const DateLayout = "2006-01-02"

// User roles
const (
	RoleGuest = 0
	RoleStaff = 1
)

// Reservation status
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
)

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

// Payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment methods
const (
	PaymentMethodCreditCard    = "credit_card"
	PaymentMethodDebitCard     = "debit_card"
	PaymentMethodCash          = "cash"
	PaymentMethodMobilePayment = "mobile_payment"
	PaymentMethodBankTransfer  = "bank_transfer"
)

// reservationTransitions lists the legal next statuses for each reservation
// status. Cancelled and checked_out are terminal.
var reservationTransitions = map[string][]string{
	ReservationStatusPending:    {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed:  {ReservationStatusCheckedIn, ReservationStatusCancelled},
	ReservationStatusCheckedIn:  {ReservationStatusCheckedOut},
	ReservationStatusCancelled:  {},
	ReservationStatusCheckedOut: {},
}

// CanTransitionReservation reports whether a reservation may move from one
// status to another.
func CanTransitionReservation(from, to string) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidReservationStatus reports whether s is a known reservation status.
func IsValidReservationStatus(s string) bool {
	_, ok := reservationTransitions[s]
	return ok
}

// IsActiveReservationStatus reports whether a reservation in status s blocks
// the room for its date range.
func IsActiveReservationStatus(s string) bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCheckedIn
}

// IsValidRoomStatus reports whether s is a known room status.
func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	}
	return false
}

// IsValidPaymentMethod reports whether m is a supported payment method.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash,
		PaymentMethodMobilePayment, PaymentMethodBankTransfer:
		return true
	}
	return false
}
