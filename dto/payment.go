package dto

import (
	"time"
)

type CreatePaymentRequest struct {
	ReservationID uint    `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	Notes         string  `json:"notes"`
}

type SettlePaymentRequest struct {
	ID            uint   `json:"id" binding:"required"`
	TransactionID string `json:"transactionId"`
}

type RefundPaymentRequest struct {
	ID uint `json:"id" binding:"required"`
}

type PaymentResponse struct {
	ID            uint       `json:"id"`
	ReservationID uint       `json:"reservationId"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ReservationTotalResponse is the advisory cost breakdown of a reservation.
type ReservationTotalResponse struct {
	ReservationID   uint    `json:"reservationId"`
	Nights          int     `json:"nights"`
	RoomSubtotal    float64 `json:"roomSubtotal"`
	ServiceSubtotal float64 `json:"serviceSubtotal"`
	Total           float64 `json:"total"`
	PaidCompleted   float64 `json:"paidCompleted"`
	Balance         float64 `json:"balance"`
}
