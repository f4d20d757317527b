package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// reservationForCaller loads a reservation and enforces owner-or-staff access.
func reservationForCaller(c *gin.Context, reservationID uint) (*models.Reservation, bool) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return nil, false
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, reservationID).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}

	if !isStaff(role) && reservation.UserID != userID {
		response.Forbidden(c)
		return nil, false
	}
	return &reservation, true
}

// GetReservationServices lists the service line items of one reservation.
func GetReservationServices(c *gin.Context) {
	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	if _, ok := reservationForCaller(c, uint(reservationID)); !ok {
		return
	}

	var items []models.ReservationService
	if err := config.DB.
		Preload("Service.ServiceType").
		Where("reservation_id = ?", uint(reservationID)).
		Order("id").
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.ReservationServiceResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, convertToReservationServiceResponse(item))
	}

	response.Success(c, responses)
}

// AddReservationService attaches a service to a reservation. Owner or staff.
func AddReservationService(c *gin.Context) {
	var req dto.AddReservationServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid reservation service payload")
		return
	}

	if _, ok := reservationForCaller(c, req.ReservationID); !ok {
		return
	}

	item, err := services.AddReservationService(config.DB, req.ReservationID, req.ServiceID, req.Quantity, req.ScheduledTime)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, convertToReservationServiceResponse(*item))
}

// DeleteReservationService detaches a service line item. Owner or staff.
func DeleteReservationService(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid line item id")
		return
	}

	var item models.ReservationService
	if err := config.DB.First(&item, uint(itemID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if _, ok := reservationForCaller(c, item.ReservationID); !ok {
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeDBError, "Could not delete line item", err))
		return
	}

	response.NoContent(c)
}
