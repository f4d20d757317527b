package services

import (
	stderrors "errors"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ServiceCharge is one reservation add-on line used for total computation.
type ServiceCharge struct {
	UnitPrice float64
	Quantity  int
}

// ComputeReservationTotal is the advisory cost formula:
// nights x price per night plus the sum of each service line.
func ComputeReservationTotal(nights int, pricePerNight float64, charges []ServiceCharge) (roomSubtotal, serviceSubtotal, total float64) {
	roomSubtotal = float64(nights) * pricePerNight
	for _, charge := range charges {
		qty := charge.Quantity
		if qty < 1 {
			qty = 1
		}
		serviceSubtotal += charge.UnitPrice * float64(qty)
	}
	return roomSubtotal, serviceSubtotal, roomSubtotal + serviceSubtotal
}

// ApplySettle marks a pending payment completed and stamps the settlement
// fields. A transaction reference is generated when none is supplied.
func ApplySettle(payment *models.Payment, transactionID string, now time.Time) error {
	if payment.Status != constants.PaymentStatusPending {
		return errors.NewAppError(errors.ErrCodeInvalidOperation,
			"Only pending payments can be settled", nil)
	}
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	payment.Status = constants.PaymentStatusCompleted
	payment.TransactionID = transactionID
	payment.PaidAt = &now
	return nil
}

// ApplyRefund marks a completed payment refunded.
func ApplyRefund(payment *models.Payment) error {
	if payment.Status != constants.PaymentStatusCompleted {
		return errors.NewAppError(errors.ErrCodeInvalidOperation,
			"Only completed payments can be refunded", nil)
	}
	payment.Status = constants.PaymentStatusRefunded
	return nil
}

// RecordPayment creates a pending payment against a reservation.
func RecordPayment(db *gorm.DB, reservationID uint, amount float64, method, notes string) (*models.Payment, error) {
	if err := validator.ValidatePayment(amount, method); err != nil {
		return nil, err
	}

	var reservation models.Reservation
	if err := db.First(&reservation, reservationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", err)
		}
		return nil, err
	}

	payment := models.Payment{
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
		Status:        constants.PaymentStatusPending,
		Notes:         notes,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to record payment", err)
	}
	return &payment, nil
}

// SettlePayment completes a pending payment and, when it is the first
// completed payment of a pending reservation, confirms the reservation in
// the same transaction.
func SettlePayment(db *gorm.DB, paymentID uint, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Payment not found", err)
			}
			return err
		}

		if err := ApplySettle(&payment, transactionID, time.Now()); err != nil {
			return err
		}
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		var reservation models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reservation, payment.ReservationID).Error; err != nil {
			return err
		}
		if reservation.Status == constants.ReservationStatusPending {
			// Confirming goes through the same room-locked availability
			// re-check as an explicit transition; a conflict rolls the
			// settlement back.
			return applyTransitionTx(tx, &reservation, constants.ReservationStatusConfirmed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RefundPayment refunds a completed payment.
func RefundPayment(db *gorm.DB, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := db.First(&payment, paymentID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Payment not found", err)
		}
		return nil, err
	}

	if err := ApplyRefund(&payment); err != nil {
		return nil, err
	}
	if err := db.Save(&payment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to refund payment", err)
	}
	return &payment, nil
}

// ReservationTotal loads a reservation with its room type and service lines
// and returns the advisory breakdown plus the completed payment sum.
func ReservationTotal(db *gorm.DB, reservationID uint) (nights int, roomSubtotal, serviceSubtotal, total, paidCompleted float64, err error) {
	var reservation models.Reservation
	if err = db.Preload("Room.RoomType").Preload("Services.Service.ServiceType").
		First(&reservation, reservationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			err = errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", err)
		}
		return
	}

	charges := make([]ServiceCharge, 0, len(reservation.Services))
	for _, item := range reservation.Services {
		charges = append(charges, ServiceCharge{
			UnitPrice: item.Service.ServiceType.Price,
			Quantity:  item.Quantity,
		})
	}

	nights = reservation.Nights()
	roomSubtotal, serviceSubtotal, total = ComputeReservationTotal(nights, reservation.Room.RoomType.PricePerNight, charges)

	err = db.Model(&models.Payment{}).
		Where("reservation_id = ? AND status = ?", reservationID, constants.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&paidCompleted).Error
	return
}
