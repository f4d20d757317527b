package models

import (
	"time"
)

type Payment struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ReservationID uint        `gorm:"not null;index" json:"reservationId"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	Amount        float64     `gorm:"not null" json:"amount"`
	Method        string      `gorm:"size:20;not null" json:"method"`
	Status        string      `gorm:"size:20;default:pending" json:"status"`
	TransactionID string      `gorm:"size:100" json:"transactionId"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	Notes         string      `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}
