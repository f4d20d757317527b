package response

import (
	"net/http"

	apperrors "stayhub/errors"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success returns a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created returns a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// NoContent returns a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination returns a 200 response with a pagination block.
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error returns a 400 response with a caller supplied code and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError returns a 500 response with no internal detail.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized returns a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Authentication required",
	})
}

// Forbidden returns a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Permission denied",
	})
}

// NotFound returns a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// ValidationError returns a 400 response for malformed input.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest returns a 400 response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict returns a 409 response.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// statusForCode maps an application error code to an HTTP status.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken,
		apperrors.ErrCodeMissingToken, apperrors.ErrCodeRevokedToken,
		apperrors.ErrCodeInvalidPassword:
		return http.StatusUnauthorized
	case apperrors.ErrCodePermissionDenied, apperrors.ErrCodeInvalidRole:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeRoomUnavailable, apperrors.ErrCodeInvalidTransition,
		apperrors.ErrCodeUserExists, apperrors.ErrCodeDBDuplicate:
		return http.StatusConflict
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidEmail,
		apperrors.ErrCodeInvalidPhone, apperrors.ErrCodeInvalidAmount,
		apperrors.ErrCodeDateRange, apperrors.ErrCodeInvalidService,
		apperrors.ErrCodeNotEligible, apperrors.ErrCodeInvalidOperation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// FromError writes the response for an application error. AppError codes map
// to their HTTP statuses; anything else becomes a 500 with no detail leaked.
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	status := statusForCode(appErr.Code)
	if status == http.StatusInternalServerError {
		ServerError(c)
		return
	}
	c.JSON(status, Response{
		Code: 0,
		Mess: appErr.Message,
	})
}
