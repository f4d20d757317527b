package controllers

import (
	"strconv"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the identity placed on the context by AuthMiddleware.
func currentUser(c *gin.Context) (uint, int, bool) {
	idVal, ok := c.Get("userID")
	if !ok {
		return 0, 0, false
	}
	roleVal, ok := c.Get("userRole")
	if !ok {
		return 0, 0, false
	}
	return idVal.(uint), roleVal.(int), true
}

func isStaff(role int) bool {
	return role == constants.RoleStaff
}

// parsePagination reads page/limit query params with the usual defaults.
func parsePagination(c *gin.Context) (page, limit int) {
	page = 0
	limit = 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

// paginate slices a window out of a filtered result set.
func paginate[T any](items []T, page, limit int) []T {
	start := page * limit
	end := start + limit
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		return items[start:]
	}
	return items[start:end]
}

func convertToActorResponse(user models.User) dto.ActorResponse {
	return dto.ActorResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func convertToUserResponse(user models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
	if user.Profile != nil {
		resp.Profile = &dto.ProfileResponse{
			Phone:     user.Profile.Phone,
			CreatedAt: user.Profile.CreatedAt,
			UpdatedAt: user.Profile.UpdatedAt,
		}
	}
	return resp
}

func convertToRoomTypeResponse(roomType models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:            roomType.ID,
		Name:          roomType.Name,
		Description:   roomType.Description,
		PricePerNight: roomType.PricePerNight,
		MaxOccupancy:  roomType.MaxOccupancy,
		HasBreakfast:  roomType.HasBreakfast,
		Amenities:     roomType.Amenities,
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:       room.ID,
		Number:   room.Number,
		Status:   room.Status,
		Notes:    room.Notes,
		RoomType: convertToRoomTypeResponse(room.RoomType),
	}
}

func convertToRoomSummary(room models.Room) dto.RoomSummary {
	return dto.RoomSummary{
		ID:            room.ID,
		Number:        room.Number,
		RoomTypeName:  room.RoomType.Name,
		PricePerNight: room.RoomType.PricePerNight,
	}
}

func convertToServiceTypeResponse(serviceType models.ServiceType) dto.ServiceTypeResponse {
	return dto.ServiceTypeResponse{
		ID:          serviceType.ID,
		Name:        serviceType.Name,
		Description: serviceType.Description,
		Price:       serviceType.Price,
	}
}

func convertToServiceResponse(service models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		IsActive:    service.IsActive,
		ServiceType: convertToServiceTypeResponse(service.ServiceType),
	}
}

func convertToReservationServiceResponse(item models.ReservationService) dto.ReservationServiceResponse {
	return dto.ReservationServiceResponse{
		ID:            item.ID,
		ReservationID: item.ReservationID,
		ServiceID:     item.ServiceID,
		ServiceName:   item.Service.Name,
		UnitPrice:     item.Service.ServiceType.Price,
		Quantity:      item.Quantity,
		ScheduledTime: item.ScheduledTime,
	}
}

func convertToReservationResponse(reservation models.Reservation) dto.ReservationResponse {
	services := make([]dto.ReservationServiceResponse, 0, len(reservation.Services))
	for _, item := range reservation.Services {
		services = append(services, convertToReservationServiceResponse(item))
	}
	return dto.ReservationResponse{
		ID:        reservation.ID,
		User:      convertToActorResponse(reservation.User),
		Room:      convertToRoomSummary(reservation.Room),
		CheckIn:   reservation.CheckIn.Format(constants.DateLayout),
		CheckOut:  reservation.CheckOut.Format(constants.DateLayout),
		Status:    reservation.Status,
		Nights:    reservation.Nights(),
		Services:  services,
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
	}
}

func convertToPaymentResponse(payment models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		ReservationID: payment.ReservationID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:            review.ID,
		ReservationID: review.ReservationID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		User:          convertToActorResponse(review.User),
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
	}
}
