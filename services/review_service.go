package services

import (
	stderrors "errors"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a unique-constraint failure,
// either gorm's translated error or a raw Postgres 23505.
func isUniqueViolation(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CheckReviewEligibility enforces who may review a reservation: only its
// owner, and only after check-out.
func CheckReviewEligibility(reservation *models.Reservation, userID uint) error {
	if reservation.UserID != userID {
		return errors.NewAppError(errors.ErrCodePermissionDenied,
			"Only the reservation owner can review it", nil)
	}
	if reservation.Status != constants.ReservationStatusCheckedOut {
		return errors.NewAppError(errors.ErrCodeNotEligible,
			"Reservation must be checked out before it can be reviewed", nil)
	}
	return nil
}

// SubmitReview creates a review for a completed stay. One review per
// (user, reservation).
func SubmitReview(db *gorm.DB, userID, reservationID uint, rating int, comment string) (*models.Review, error) {
	if err := validator.ValidateRating(rating); err != nil {
		return nil, err
	}

	var reservation models.Reservation
	if err := db.First(&reservation, reservationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", err)
		}
		return nil, err
	}

	if err := CheckReviewEligibility(&reservation, userID); err != nil {
		return nil, err
	}

	var existing models.Review
	if err := db.Where("user_id = ? AND reservation_id = ?", userID, reservationID).
		First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "You have already reviewed this stay", nil)
	}

	review := models.Review{
		UserID:        userID,
		ReservationID: reservationID,
		Rating:        rating,
		Comment:       comment,
	}
	if err := db.Create(&review).Error; err != nil {
		// Two requests can pass the pre-check together; the unique index
		// on (user_id, reservation_id) decides the race.
		if isUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "You have already reviewed this stay", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to create review", err)
	}

	if err := db.Preload("User").First(&review, review.ID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
