package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// GetPayments lists payments. Staff see all, guests only payments on their
// own reservations.
func GetPayments(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Payment{}).Order("payments.id DESC")
	if !isStaff(role) {
		query = query.
			Joins("JOIN reservations ON reservations.id = payments.reservation_id").
			Where("reservations.user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("payments.status = ?", status)
	}
	if reservationIDStr := c.Query("reservationId"); reservationIDStr != "" {
		if reservationID, err := strconv.ParseUint(reservationIDStr, 10, 64); err == nil {
			query = query.Where("payments.reservation_id = ?", uint(reservationID))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	if err := query.Offset(page * limit).Limit(limit).Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, convertToPaymentResponse(payment))
	}

	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetPaymentByID returns one payment. Owner of the reservation or staff.
func GetPaymentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid payment id")
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if _, ok := reservationForCaller(c, payment.ReservationID); !ok {
		return
	}

	response.Success(c, convertToPaymentResponse(payment))
}

// CreatePayment records a pending payment against a reservation. Owner or
// staff.
func CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid payment payload")
		return
	}

	if _, ok := reservationForCaller(c, req.ReservationID); !ok {
		return
	}

	payment, err := services.RecordPayment(config.DB, req.ReservationID, req.Amount, req.Method, req.Notes)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, convertToPaymentResponse(*payment))
}

// SettlePayment marks a pending payment completed and confirms the pending
// reservation it pays for. Staff only.
func SettlePayment(c *gin.Context) {
	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid settle payload")
		return
	}

	payment, err := services.SettlePayment(config.DB, req.ID, req.TransactionID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateRoomCache()
	response.Success(c, convertToPaymentResponse(*payment))
}

// RefundPayment marks a completed payment refunded. Staff only.
func RefundPayment(c *gin.Context) {
	var req dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid refund payload")
		return
	}

	payment, err := services.RefundPayment(config.DB, req.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, convertToPaymentResponse(*payment))
}

// GetReservationTotal returns the advisory cost breakdown and outstanding
// balance of a reservation. Owner or staff.
func GetReservationTotal(c *gin.Context) {
	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	if _, ok := reservationForCaller(c, uint(reservationID)); !ok {
		return
	}

	nights, roomSubtotal, serviceSubtotal, total, paidCompleted, err := services.ReservationTotal(config.DB, uint(reservationID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.ReservationTotalResponse{
		ReservationID:   uint(reservationID),
		Nights:          nights,
		RoomSubtotal:    roomSubtotal,
		ServiceSubtotal: serviceSubtotal,
		Total:           total,
		PaidCompleted:   paidCompleted,
		Balance:         total - paidCompleted,
	})
}
