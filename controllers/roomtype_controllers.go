package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const roomTypeCacheKey = "roomtypes:all"

func invalidateRoomTypeCache() {
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomTypeCacheKey)
}

// GetRoomTypes lists the room catalog. The full set is cached and the page
// window is cut in memory.
func GetRoomTypes(c *gin.Context) {
	page, limit := parsePagination(c)

	var roomTypes []models.RoomType
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomTypeCacheKey, &roomTypes); err != nil || len(roomTypes) == 0 {
		if err := config.DB.Order("id").Find(&roomTypes).Error; err != nil {
			response.ServerError(c)
			return
		}
		_ = services.SetToRedis(config.Ctx, config.RedisClient, roomTypeCacheKey, roomTypes, 10*time.Minute)
	}

	if name := c.Query("name"); name != "" {
		filtered := make([]models.RoomType, 0, len(roomTypes))
		needle := normalizeInput(name)
		for _, rt := range roomTypes {
			if strings.Contains(normalizeInput(rt.Name), needle) {
				filtered = append(filtered, rt)
			}
		}
		roomTypes = filtered
	}
	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			filtered := make([]models.RoomType, 0, len(roomTypes))
			for _, rt := range roomTypes {
				if rt.PricePerNight <= maxPrice {
					filtered = append(filtered, rt)
				}
			}
			roomTypes = filtered
		}
	}

	total := len(roomTypes)
	roomTypes = paginate(roomTypes, page, limit)

	responses := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		responses = append(responses, convertToRoomTypeResponse(rt))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// GetRoomTypeByID returns one room type.
func GetRoomTypeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// CreateRoomType adds a room type. Staff only.
func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid room type payload")
		return
	}

	if err := validator.ValidateRoomType(req.Name, req.PricePerNight, req.MaxOccupancy); err != nil {
		response.FromError(c, err)
		return
	}

	roomType := models.RoomType{
		Name:          req.Name,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxOccupancy:  req.MaxOccupancy,
		HasBreakfast:  req.HasBreakfast,
		Amenities:     req.Amenities,
	}
	if err := config.DB.Create(&roomType).Error; err != nil {
		response.Conflict(c, "Room type name already exists")
		return
	}

	invalidateRoomTypeCache()
	response.Created(c, convertToRoomTypeResponse(roomType))
}

// UpdateRoomType modifies a room type. Staff only.
func UpdateRoomType(c *gin.Context) {
	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid room type payload")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		roomType.Name = *req.Name
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}
	if req.PricePerNight != nil {
		roomType.PricePerNight = *req.PricePerNight
	}
	if req.MaxOccupancy != nil {
		roomType.MaxOccupancy = *req.MaxOccupancy
	}
	if req.HasBreakfast != nil {
		roomType.HasBreakfast = *req.HasBreakfast
	}
	if req.Amenities != nil {
		roomType.Amenities = req.Amenities
	}

	if err := validator.ValidateRoomType(roomType.Name, roomType.PricePerNight, roomType.MaxOccupancy); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, convertToRoomTypeResponse(roomType))
}

// DeleteRoomType removes a room type with no rooms attached. Staff only.
func DeleteRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	var roomCount int64
	if err := config.DB.Model(&models.Room{}).Where("room_type_id = ?", uint(id)).Count(&roomCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if roomCount > 0 {
		response.Conflict(c, "Room type still has rooms attached")
		return
	}

	result := config.DB.Delete(&models.RoomType{}, uint(id))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateRoomTypeCache()
	response.NoContent(c)
}

// SuggestRoomTypes returns typo tolerant matches for a free text query,
// scored against names and amenities.
func SuggestRoomTypes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing query")
		return
	}

	var roomTypes []models.RoomType
	if err := config.DB.Order("id").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(roomTypes))
	for _, rt := range roomTypes {
		names = append(names, normalizeInput(rt.Name))
	}
	matcher := createMatcher(names)
	normalizedQuery := normalizeInput(query)
	closest := matcher.Closest(normalizedQuery)

	suggestions := make([]dto.RoomTypeSuggestion, 0, len(roomTypes))
	for _, rt := range roomTypes {
		score := scoreRoomType(normalizedQuery, rt, closest)
		if score > 0 {
			suggestions = append(suggestions, dto.RoomTypeSuggestion{
				ID:    rt.ID,
				Name:  rt.Name,
				Score: score,
			})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}

	response.Success(c, suggestions)
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func scoreRoomType(normalizedQuery string, roomType models.RoomType, closestName string) int {
	normalizedName := normalizeInput(roomType.Name)
	score := 0

	if normalizedName == closestName {
		score += 20
	}
	if strings.Contains(normalizedName, normalizedQuery) || strings.Contains(normalizedQuery, normalizedName) {
		score += 15
	}
	if similarity := calculateSimilarity(normalizedQuery, normalizedName); similarity >= 0.5 {
		score += int(similarity * 10)
	}
	for _, amenity := range roomType.Amenities {
		if strings.Contains(normalizedQuery, normalizeInput(amenity)) {
			score += 5
		}
	}

	return score
}
