package main

import (
	"log"
	"os"
	"time"

	"sea-catering-be/internal/constant"
	"sea-catering-be/internal/model"
	"sea-catering-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the bootstrap admin account and prints the pricing catalog for a
// quick sanity check. Admin credentials come from ADMIN_EMAIL and
// ADMIN_PASSWORD.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@seacatering.id"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "ChangeMe123!"
		color.Yellow("ADMIN_PASSWORD not set, using default. Change it immediately.")
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Green("Admin account '%s' already exists, skipping...", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error: Failed to hash admin password:", err)
		}

		admin := model.User{
			Id:           uuid.New(),
			Email:        adminEmail,
			FullName:     "SEA Catering Admin",
			PasswordHash: string(hash),
			Role:         "admin",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("Error: Failed to create admin account:", err)
		}
		color.Green("Created admin account: %s", adminEmail)
	}

	color.Cyan("\nPricing catalog (defined in code):")
	for _, plan := range constant.PricingPlans {
		marker := " "
		if plan.Popular {
			marker = "*"
		}
		color.White("%s [%d] %s (%s) - Rp%d/meal", marker, plan.Idx, plan.Name, plan.Subtitle, plan.Price)
	}

	color.Green("\nSeeding completed!")
}
