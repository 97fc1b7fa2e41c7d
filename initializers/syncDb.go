package initializers

import (
	"log"
	"os"

	"github.com/AMiROH/bakery-api/models"
	"golang.org/x/crypto/bcrypt"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}, &models.OrderLineItem{}, &models.Review{})
	log.Println("Database synced successfully.")
}

// SeedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on first boot.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Skipping admin seed: ADMIN_EMAIL/ADMIN_PASSWORD not set.")
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Fullname: "Bakery Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin account:", err)
		return
	}
	log.Println("Seeded admin account:", email)
}
