package config

import (
	"os"

	"rotiseria-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var baseUnits = []models.MeasurementUnit{
	{Name: "Kilogram", Abbreviation: "kg"},
	{Name: "Gram", Abbreviation: "g"},
	{Name: "Liter", Abbreviation: "l"},
	{Name: "Milliliter", Abbreviation: "ml"},
	{Name: "Unit", Abbreviation: "u"},
}

// Seed creates the base measurement units and the admin account on first
// boot. Safe to run on every start.
func Seed(db *gorm.DB) error {
	for _, unit := range baseUnits {
		if err := db.Where(models.MeasurementUnit{Name: unit.Name}).FirstOrCreate(&unit).Error; err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        "admin@rotiseria.local",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
