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

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const roomCacheKey = "rooms:all"

func invalidateRoomCache() {
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomCacheKey)
}

// GetRooms lists rooms with optional status and room type filters.
func GetRooms(c *gin.Context) {
	page, limit := parsePagination(c)

	var rooms []models.Room
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomCacheKey, &rooms); err != nil || len(rooms) == 0 {
		if err := config.DB.Preload("RoomType").Order("id").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		_ = services.SetToRedis(config.Ctx, config.RedisClient, roomCacheKey, rooms, 5*time.Minute)
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if room.Status == status {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	if roomTypeStr := c.Query("roomTypeId"); roomTypeStr != "" {
		if roomTypeID, err := strconv.ParseUint(roomTypeStr, 10, 64); err == nil {
			filtered := make([]models.Room, 0, len(rooms))
			for _, room := range rooms {
				if room.RoomTypeID == uint(roomTypeID) {
					filtered = append(filtered, room)
				}
			}
			rooms = filtered
		}
	}

	total := len(rooms)
	rooms = paginate(rooms, page, limit)

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// GetRoomByID returns one room with its type.
func GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// CreateRoom adds a room. Staff only.
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid room payload")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room type not found", err))
		return
	}

	room := models.Room{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
		Status:     constants.RoomStatusAvailable,
		Notes:      req.Notes,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.Conflict(c, "Room number already exists")
		return
	}
	room.RoomType = roomType

	invalidateRoomCache()
	response.Created(c, convertToRoomResponse(room))
}

// UpdateRoom modifies a room's number, type or notes. Staff only.
func UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid room payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.RoomTypeID != nil {
		var roomType models.RoomType
		if err := config.DB.First(&roomType, *req.RoomTypeID).Error; err != nil {
			response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Room type not found", err))
			return
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Preload("RoomType").First(&room, room.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, convertToRoomResponse(room))
}

// ChangeRoomStatus puts a room in or out of maintenance or cleaning. Staff
// only. Booking driven statuses are owned by the reservation flow and cannot
// be set by hand.
func ChangeRoomStatus(c *gin.Context) {
	var req dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid room status payload")
		return
	}

	if req.Status != constants.RoomStatusMaintenance &&
		req.Status != constants.RoomStatusCleaning &&
		req.Status != constants.RoomStatusAvailable {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Status must be maintenance, cleaning or available", nil))
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status == constants.RoomStatusAvailable {
			// Releasing the room hands the status back to the booking
			// projection, which may immediately mark it booked again.
			return services.SyncRoomStatus(tx, room.ID, time.Now())
		}
		room.Status = req.Status
		return nil
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("RoomType").First(&room, room.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom removes a room that has no reservations. Staff only.
func DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var reservationCount int64
	if err := config.DB.Model(&models.Reservation{}).Where("room_id = ?", uint(id)).Count(&reservationCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if reservationCount > 0 {
		response.Conflict(c, "Room still has reservations")
		return
	}

	result := config.DB.Delete(&models.Room{}, uint(id))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateRoomCache()
	response.NoContent(c)
}
