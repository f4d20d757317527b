package models

import (
	"time"
)

type Reservation struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	User     User      `gorm:"foreignKey:UserID" json:"user"`
	RoomID   uint      `gorm:"not null;index" json:"roomId"`
	Room     Room      `gorm:"foreignKey:RoomID" json:"room"`
	CheckIn  time.Time `gorm:"type:date;not null" json:"checkIn"`
	CheckOut time.Time `gorm:"type:date;not null" json:"checkOut"`
	Status   string    `gorm:"size:20;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Services []ReservationService `gorm:"foreignKey:ReservationID" json:"services,omitempty"`
	Payments []Payment            `gorm:"foreignKey:ReservationID" json:"payments,omitempty"`
}

// Nights returns the number of nights in the [CheckIn, CheckOut) range.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// ReservationService is a priced add-on attached to a reservation.
type ReservationService struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ReservationID uint        `gorm:"not null;index" json:"reservationId"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	ServiceID     uint        `gorm:"not null" json:"serviceId"`
	Service       Service     `gorm:"foreignKey:ServiceID" json:"service"`
	Quantity      int         `gorm:"default:1;not null" json:"quantity"`
	ScheduledTime *time.Time  `json:"scheduledTime,omitempty"`
}
