package dto

import (
	"time"
)

type CreateReservationRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type ChangeReservationStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ReservationResponse struct {
	ID        uint                         `json:"id"`
	User      ActorResponse                `json:"user"`
	Room      RoomSummary                  `json:"room"`
	CheckIn   string                       `json:"checkIn"`
	CheckOut  string                       `json:"checkOut"`
	Status    string                       `json:"status"`
	Nights    int                          `json:"nights"`
	Services  []ReservationServiceResponse `json:"services"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

type AddReservationServiceRequest struct {
	ReservationID uint       `json:"reservationId" binding:"required"`
	ServiceID     uint       `json:"serviceId" binding:"required"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	ScheduledTime *time.Time `json:"scheduledTime"`
}

type ReservationServiceResponse struct {
	ID            uint       `json:"id"`
	ReservationID uint       `json:"reservationId"`
	ServiceID     uint       `json:"serviceId"`
	ServiceName   string     `json:"serviceName"`
	UnitPrice     float64    `json:"unitPrice"`
	Quantity      int        `json:"quantity"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
}
