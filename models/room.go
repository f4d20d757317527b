package models

import (
	"fmt"

	"stayhub/constants"

	"github.com/lib/pq"
)

type RoomType struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"unique;size:100;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	PricePerNight float64        `gorm:"not null" json:"pricePerNight"`
	MaxOccupancy  int            `gorm:"not null" json:"maxOccupancy"`
	HasBreakfast  bool           `gorm:"default:false" json:"hasBreakfast"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Rooms         []Room         `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}

type Room struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Number     string   `gorm:"unique;size:50;not null" json:"number"`
	RoomTypeID uint     `gorm:"not null" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType"`
	// Status is a cached projection of the reservations overlapping today.
	// It is updated transactionally on reservation transitions and resynced
	// nightly; maintenance and cleaning are set by staff only.
	Status string `gorm:"size:20;default:available" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`
}

func (r *Room) ValidateStatus() error {
	if !constants.IsValidRoomStatus(r.Status) {
		return fmt.Errorf("invalid room status: %s", r.Status)
	}
	return nil
}
