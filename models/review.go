package models

import (
	"time"
)

// Review ties a user and a completed stay to a rating. One review per
// (user, reservation) is enforced at the database level.
type Review struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;uniqueIndex:idx_reviews_user_reservation" json:"userId"`
	User          User        `gorm:"foreignKey:UserID" json:"user"`
	ReservationID uint        `gorm:"not null;uniqueIndex:idx_reviews_user_reservation" json:"reservationId"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	Rating        int         `gorm:"not null" json:"rating"`
	Comment       string      `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}
