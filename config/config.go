package config

import (
	"log"
	"os"

	"rotiseria-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs mobile API tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "rotiseria_super_secret_2024"))

// SessionSecret signs panel session cookies
var SessionSecret = []byte(getEnv("SESSION_SECRET", "rotiseria_panel_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	dbPath := getEnv("DB_PATH", "rotiseria.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.CadetProfile{},
		&models.CookProfile{},
		&models.MeasurementUnit{},
		&models.Ingredient{},
		&models.Dish{},
		&models.DishIngredient{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.OrderStatusHistory{},
		&models.Session{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
