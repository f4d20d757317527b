package dto

import (
	"time"
)

type CreateReviewRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

type UpdateReviewRequest struct {
	ID      uint    `json:"id" binding:"required"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type ReviewResponse struct {
	ID            uint          `json:"id"`
	ReservationID uint          `json:"reservationId"`
	Rating        int           `json:"rating"`
	Comment       string        `json:"comment"`
	User          ActorResponse `json:"user"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
