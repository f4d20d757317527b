package dto

type RoomTypeResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxOccupancy  int      `json:"maxOccupancy"`
	HasBreakfast  bool     `json:"hasBreakfast"`
	Amenities     []string `json:"amenities"`
}

type CreateRoomTypeRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxOccupancy  int      `json:"maxOccupancy" binding:"required"`
	HasBreakfast  bool     `json:"hasBreakfast"`
	Amenities     []string `json:"amenities"`
}

type UpdateRoomTypeRequest struct {
	ID            uint     `json:"id" binding:"required"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	MaxOccupancy  *int     `json:"maxOccupancy"`
	HasBreakfast  *bool    `json:"hasBreakfast"`
	Amenities     []string `json:"amenities"`
}

// RoomTypeSuggestion is one typo-tolerant match for a room type query.
type RoomTypeSuggestion struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type RoomResponse struct {
	ID       uint             `json:"id"`
	Number   string           `json:"number"`
	Status   string           `json:"status"`
	Notes    string           `json:"notes"`
	RoomType RoomTypeResponse `json:"roomType"`
}

// RoomSummary is the short room projection embedded in reservations.
type RoomSummary struct {
	ID            uint    `json:"id"`
	Number        string  `json:"number"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
}

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	Notes      string `json:"notes"`
}

type UpdateRoomRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Number     *string `json:"number"`
	RoomTypeID *uint   `json:"roomTypeId"`
	Notes      *string `json:"notes"`
}

type ChangeRoomStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
