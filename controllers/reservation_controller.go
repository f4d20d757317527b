package controllers

import (
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetReservations lists reservations. Staff see all, guests only their own.
// Supports status, roomId and check-in date range filters.
func GetReservations(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	query := config.DB.
		Preload("User").
		Preload("Room.RoomType").
		Preload("Services.Service.ServiceType").
		Order("check_in DESC")
	if !isStaff(role) {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		if !constants.IsValidReservationStatus(status) {
			response.BadRequest(c, "Unknown reservation status")
			return
		}
		query = query.Where("status = ?", status)
	}
	if roomIDStr := c.Query("roomId"); roomIDStr != "" {
		if roomID, err := strconv.ParseUint(roomIDStr, 10, 64); err == nil {
			query = query.Where("room_id = ?", uint(roomID))
		}
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if from, err := time.Parse(constants.DateLayout, fromStr); err == nil {
			query = query.Where("check_in >= ?", from)
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if to, err := time.Parse(constants.DateLayout, toStr); err == nil {
			query = query.Where("check_in <= ?", to)
		}
	}

	var total int64
	if err := query.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := query.Offset(page * limit).Limit(limit).Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		responses = append(responses, convertToReservationResponse(reservation))
	}

	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetReservationByID returns one reservation. Guests may only read their own.
func GetReservationByID(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	var reservation models.Reservation
	if err := config.DB.
		Preload("User").
		Preload("Room.RoomType").
		Preload("Services.Service.ServiceType").
		First(&reservation, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !isStaff(role) && reservation.UserID != userID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToReservationResponse(reservation))
}

// CreateReservation books a room for the caller. The room row is locked and
// the date range checked against confirmed and checked-in stays before the
// pending reservation is written.
func CreateReservation(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid reservation payload")
		return
	}

	checkIn, checkOut, err := validator.ValidateReservationDates(req.CheckIn, req.CheckOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	reservation, err := services.CreateReservation(config.DB, userID, req.RoomID, checkIn, checkOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateRoomCache()
	response.Created(c, convertToReservationResponse(*reservation))
}

// ChangeReservationStatus moves a reservation through its lifecycle. Staff
// may apply any legal transition; guests may only cancel their own pending or
// confirmed reservations.
func ChangeReservationStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangeReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid status payload")
		return
	}

	if !constants.IsValidReservationStatus(req.Status) {
		response.BadRequest(c, "Unknown reservation status")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !isStaff(role) {
		if reservation.UserID != userID {
			response.Forbidden(c)
			return
		}
		if req.Status != constants.ReservationStatusCancelled {
			response.FromError(c, apperrors.NewAppError(apperrors.ErrCodePermissionDenied, "Guests may only cancel their reservations", nil))
			return
		}
	}

	updated, err := services.TransitionReservation(config.DB, req.ID, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateRoomCache()
	response.Success(c, convertToReservationResponse(*updated))
}

// DeleteReservation removes a cancelled reservation and its line items. Staff
// only.
func DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if reservation.Status != constants.ReservationStatusCancelled {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Only cancelled reservations can be deleted", nil))
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", reservation.ID).Delete(&models.ReservationService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.NoContent(c)
}
