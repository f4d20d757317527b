package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// GetReviews lists reviews. Staff see all; guests see their own. A
// reservationId filter narrows to one stay.
func GetReviews(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	query := config.DB.Preload("User").Order("id DESC")
	if !isStaff(role) {
		query = query.Where("user_id = ?", userID)
	}
	if reservationIDStr := c.Query("reservationId"); reservationIDStr != "" {
		if reservationID, err := strconv.ParseUint(reservationIDStr, 10, 64); err == nil {
			query = query.Where("reservation_id = ?", uint(reservationID))
		}
	}

	var total int64
	if err := query.Model(&models.Review{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := query.Offset(page * limit).Limit(limit).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, convertToReviewResponse(review))
	}

	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetReviewByID returns one review. Guests may only read their own.
func GetReviewByID(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").First(&review, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !isStaff(role) && review.UserID != userID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

// CreateReview posts a review for a stay the caller has checked out of.
func CreateReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid review payload")
		return
	}

	review, err := services.SubmitReview(config.DB, userID, req.ReservationID, req.Rating, req.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, convertToReviewResponse(*review))
}

// UpdateReview edits the caller's own review.
func UpdateReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid review payload")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").First(&review, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !isStaff(role) && review.UserID != userID {
		response.Forbidden(c)
		return
	}

	if req.Rating != nil {
		if err := validator.ValidateRating(*req.Rating); err != nil {
			response.FromError(c, err)
			return
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

// DeleteReview removes a review. Owner or staff.
func DeleteReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !isStaff(role) && review.UserID != userID {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.NoContent(c)
}
