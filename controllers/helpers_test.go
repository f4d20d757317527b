package controllers

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{"first page", 0, 3, []int{1, 2, 3}},
		{"middle page", 1, 3, []int{4, 5, 6}},
		{"short last page", 2, 3, []int{7}},
		{"past the end", 3, 3, []int{}},
		{"limit over total", 0, 100, []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(items, tt.page, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConvertToReservationResponse(t *testing.T) {
	checkIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	reservation := models.Reservation{
		ID:       3,
		UserID:   7,
		User:     models.User{ID: 7, Username: "guest1", Email: "guest@example.com"},
		RoomID:   2,
		Room:     models.Room{ID: 2, Number: "204", RoomType: models.RoomType{Name: "Deluxe", PricePerNight: 150}},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   constants.ReservationStatusConfirmed,
	}

	resp := convertToReservationResponse(reservation)
	if resp.CheckIn != "2025-01-10" || resp.CheckOut != "2025-01-12" {
		t.Errorf("dates = %s..%s", resp.CheckIn, resp.CheckOut)
	}
	if resp.Nights != 2 {
		t.Errorf("nights = %d, want 2", resp.Nights)
	}
	if resp.User.Username != "guest1" {
		t.Errorf("user = %+v", resp.User)
	}
	if resp.Room.Number != "204" || resp.Room.RoomTypeName != "Deluxe" || resp.Room.PricePerNight != 150 {
		t.Errorf("room = %+v", resp.Room)
	}
	if resp.Services == nil || len(resp.Services) != 0 {
		t.Errorf("services should be an empty slice, got %v", resp.Services)
	}
}

func TestConvertToUserResponseHidesNilProfile(t *testing.T) {
	user := models.User{ID: 1, Username: "u", Email: "u@example.com"}
	resp := convertToUserResponse(user)
	if resp.Profile != nil {
		t.Error("profile should be nil when the model has none")
	}

	user.Profile = &models.Profile{Phone: "+12025550123"}
	resp = convertToUserResponse(user)
	if resp.Profile == nil || resp.Profile.Phone != "+12025550123" {
		t.Errorf("profile = %+v", resp.Profile)
	}
}
