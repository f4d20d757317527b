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

// GetUsers lists accounts. Staff see everyone, guests only themselves.
func GetUsers(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	query := config.DB.Preload("Profile").Order("id")
	if !isStaff(role) {
		query = query.Where("id = ?", userID)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	total := len(users)
	users = paginate(users, page, limit)

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// GetUserByID returns one account. Staff may read anyone, guests only their
// own record.
func GetUserByID(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	if !isStaff(role) && uint(id) != userID {
		response.Forbidden(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Profile").First(&user, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// GetProfile returns the caller's own account with profile.
func GetProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateUser modifies name and phone fields. Staff may update anyone, guests
// only themselves.
func UpdateUser(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	if !isStaff(role) && uint(id) != userID {
		response.Forbidden(c)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid update payload")
		return
	}

	user, err := services.UpdateUserProfile(config.DB, uint(id), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
