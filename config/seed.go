package config

import (
	"log"
	"os"

	"stayhub/constants"
	"stayhub/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// SeedDatabase fills empty reference tables and ensures a staff account
// exists so a fresh deployment is usable.
func SeedDatabase() {
	var staffCount int64
	DB.Model(&models.User{}).Where("role = ?", constants.RoleStaff).Count(&staffCount)
	if staffCount == 0 {
		password := os.Getenv("SEED_STAFF_PASSWORD")
		if password == "" {
			password = "staff123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default staff password: %v", err)
		} else {
			staff := models.User{
				Username: "staff",
				Email:    "staff@stayhub.local",
				Password: string(hash),
				Role:     constants.RoleStaff,
				Profile:  &models.Profile{},
			}
			if err := DB.Create(&staff).Error; err != nil {
				log.Printf("warning: failed to create default staff user: %v", err)
			} else {
				log.Println("Default staff user seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard Room", PricePerNight: 80, MaxOccupancy: 2, Amenities: pq.StringArray{"wifi", "tv"}},
			{Name: "Superior", Description: "Superior Room", PricePerNight: 110, MaxOccupancy: 3, Amenities: pq.StringArray{"wifi", "tv", "minibar"}},
			{Name: "Deluxe", Description: "Deluxe Room", PricePerNight: 150, MaxOccupancy: 4, HasBreakfast: true, Amenities: pq.StringArray{"wifi", "tv", "minibar", "balcony"}},
			{Name: "Suite", Description: "Suite with separate living area", PricePerNight: 240, MaxOccupancy: 5, HasBreakfast: true, Amenities: pq.StringArray{"wifi", "tv", "minibar", "balcony", "bathtub"}},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")
		}
	}

	var stCount int64
	DB.Model(&models.ServiceType{}).Count(&stCount)
	if stCount == 0 {
		serviceTypes := []models.ServiceType{
			{Name: "Spa", Description: "Spa and wellness", Price: 45},
			{Name: "Laundry", Description: "Laundry per load", Price: 12},
			{Name: "Airport Transfer", Description: "One-way airport shuttle", Price: 30},
			{Name: "Room Service", Description: "In-room dining", Price: 20},
		}
		if err := DB.Create(&serviceTypes).Error; err != nil {
			log.Printf("warning: failed to seed service types: %v", err)
		} else {
			log.Println("Service types seeded")
		}
	}
}
