package controllers

import (
	"testing"

	"stayhub/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Deluxe Suite  ", "deluxe suite"},
		{"CAFÉ", "cafe"},
		{"Phòng đôi", "phong doi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if sim := calculateSimilarity("deluxe", "deluxe"); sim != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", sim)
	}
	if sim := calculateSimilarity("", ""); sim != 1.0 {
		t.Errorf("empty strings = %v, want 1.0", sim)
	}
	if sim := calculateSimilarity("deluxe", "delux"); sim < 0.8 {
		t.Errorf("one-char typo = %v, want close to 1", sim)
	}
	if sim := calculateSimilarity("deluxe", "zzzzzz"); sim > 0.2 {
		t.Errorf("unrelated strings = %v, want close to 0", sim)
	}
}

func TestScoreRoomTypePrefersCloseNames(t *testing.T) {
	deluxe := models.RoomType{ID: 1, Name: "Deluxe", Amenities: []string{"balcony"}}
	standard := models.RoomType{ID: 2, Name: "Standard", Amenities: nil}

	query := normalizeInput("delux")
	deluxeScore := scoreRoomType(query, deluxe, "deluxe")
	standardScore := scoreRoomType(query, standard, "deluxe")
	if deluxeScore <= standardScore {
		t.Errorf("deluxe score %d should beat standard score %d for query %q",
			deluxeScore, standardScore, query)
	}
}

func TestScoreRoomTypeCountsAmenities(t *testing.T) {
	roomType := models.RoomType{ID: 1, Name: "Suite", Amenities: []string{"balcony", "minibar"}}
	base := scoreRoomType(normalizeInput("quiet room"), roomType, "suite")
	withAmenity := scoreRoomType(normalizeInput("quiet room with balcony"), roomType, "suite")
	if withAmenity <= base {
		t.Errorf("amenity mention should raise the score: %d vs %d", withAmenity, base)
	}
}
