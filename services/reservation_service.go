package services

import (
	stderrors "errors"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RangesOverlap reports whether [aStart, aEnd) intersects [bStart, bEnd).
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// lockRoomForBooking takes the room row lock that serializes every
// availability decision for the room. All paths that count overlapping
// stays before writing must hold this lock.
func lockRoomForBooking(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Room not found", err)
		}
		return nil, err
	}
	return &room, nil
}

// countOverlappingStays counts the confirmed and checked-in reservations
// intersecting [checkIn, checkOut) on a room, excluding excludeID.
func countOverlappingStays(tx *gorm.DB, roomID, excludeID uint, checkIn, checkOut time.Time) (int64, error) {
	var overlapping int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND id <> ? AND status IN ? AND check_in < ? AND check_out > ?",
			roomID, excludeID,
			[]string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn},
			checkOut, checkIn).
		Count(&overlapping).Error
	return overlapping, err
}

// CreateReservation books a room for a user over [checkIn, checkOut). The
// room row is locked for the duration of the transaction so the overlap
// check and the insert are atomic against concurrent bookings.
func CreateReservation(db *gorm.DB, userID, roomID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeDateRange, "Check-out must be after check-in", nil)
	}

	var reservation models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoomForBooking(tx, roomID); err != nil {
			return err
		}

		overlapping, err := countOverlappingStays(tx, roomID, 0, checkIn, checkOut)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Room is already booked for this date range", nil)
		}

		reservation = models.Reservation{
			UserID:   userID,
			RoomID:   roomID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Status:   constants.ReservationStatusPending,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("User.Profile").Preload("Room.RoomType").
		Preload("Services.Service.ServiceType").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// applyTransitionTx moves a reservation to newStatus inside the caller's
// transaction. Activation (pending to confirmed) takes the room row lock
// before the availability re-check, so two concurrent activations on the
// same room serialize and the loser sees the winner's committed stay.
func applyTransitionTx(tx *gorm.DB, reservation *models.Reservation, newStatus string) error {
	if !constants.CanTransitionReservation(reservation.Status, newStatus) {
		return errors.NewAppError(errors.ErrCodeInvalidTransition,
			"Cannot move reservation from "+reservation.Status+" to "+newStatus, nil)
	}

	if constants.IsActiveReservationStatus(newStatus) && !constants.IsActiveReservationStatus(reservation.Status) {
		if _, err := lockRoomForBooking(tx, reservation.RoomID); err != nil {
			return err
		}
		overlapping, err := countOverlappingStays(tx, reservation.RoomID, reservation.ID, reservation.CheckIn, reservation.CheckOut)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Room is already booked for this date range", nil)
		}
	}

	if err := tx.Model(reservation).Update("status", newStatus).Error; err != nil {
		return err
	}
	reservation.Status = newStatus

	return syncRoomStatusTx(tx, reservation.RoomID, time.Now())
}

// TransitionReservation moves a reservation through its state machine and
// keeps the room status projection in sync within the same transaction.
func TransitionReservation(db *gorm.DB, reservationID uint, newStatus string) (*models.Reservation, error) {
	if !constants.IsValidReservationStatus(newStatus) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Unknown reservation status", nil)
	}

	var reservation models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, reservationID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", err)
			}
			return err
		}

		return applyTransitionTx(tx, &reservation, newStatus)
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("User.Profile").Preload("Room.RoomType").
		Preload("Services.Service.ServiceType").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// AddReservationService attaches a priced add-on to a reservation. Inactive
// services are rejected; reactivating a service later does not validate
// attempts made while it was inactive.
func AddReservationService(db *gorm.DB, reservationID, serviceID uint, quantity int, scheduledTime *time.Time) (*models.ReservationService, error) {
	if quantity < 1 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Quantity must be at least 1", nil)
	}

	var item models.ReservationService
	err := db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", err)
			}
			return err
		}

		var service models.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Service not found", err)
			}
			return err
		}
		if !service.IsActive {
			return errors.NewAppError(errors.ErrCodeInvalidService, "Service is not active", nil)
		}

		item = models.ReservationService{
			ReservationID: reservationID,
			ServiceID:     serviceID,
			Quantity:      quantity,
			ScheduledTime: scheduledTime,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Service.ServiceType").First(&item, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// syncRoomStatusTx recomputes the cached room status from the reservations
// overlapping now. Staff-set maintenance and cleaning states are kept.
func syncRoomStatusTx(tx *gorm.DB, roomID uint, now time.Time) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return err
	}
	if room.Status == constants.RoomStatusMaintenance || room.Status == constants.RoomStatusCleaning {
		return nil
	}

	today := now.Truncate(24 * time.Hour)
	var active int64
	if err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ? AND check_in <= ? AND check_out > ?",
			roomID,
			[]string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn},
			today, today).
		Count(&active).Error; err != nil {
		return err
	}

	status := constants.RoomStatusAvailable
	if active > 0 {
		status = constants.RoomStatusBooked
	}
	if room.Status == status {
		return nil
	}
	return tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status", status).Error
}

// SyncRoomStatus recomputes one room's cached status inside the caller's
// transaction.
func SyncRoomStatus(tx *gorm.DB, roomID uint, now time.Time) error {
	return syncRoomStatusTx(tx, roomID, now)
}

// SyncAllRoomStatuses refreshes the room status projection for every room.
// Run nightly so statuses follow check-in/check-out date boundaries even
// without an explicit transition.
func SyncAllRoomStatuses(db *gorm.DB, now time.Time) error {
	var roomIDs []uint
	if err := db.Model(&models.Room{}).Pluck("id", &roomIDs).Error; err != nil {
		return err
	}
	for _, id := range roomIDs {
		if err := db.Transaction(func(tx *gorm.DB) error {
			return syncRoomStatusTx(tx, id, now)
		}); err != nil {
			return err
		}
	}
	return nil
}

// CancelStaleReservations cancels pending reservations whose check-in date
// has already passed without a confirmation.
func CancelStaleReservations(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&models.Reservation{}).
		Where("status = ? AND check_in < ?", constants.ReservationStatusPending, now.Truncate(24*time.Hour)).
		Update("status", constants.ReservationStatusCancelled)
	return res.RowsAffected, res.Error
}
