package models

import "time"

type Dish struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	SalePrice   float64 `json:"sale_price" gorm:"not null"`
	TotalCost   float64 `json:"total_cost" gorm:"not null"`
	// Soft-delete flag: dishes referenced by orders are disabled, never removed
	Available bool   `json:"available" gorm:"default:true"`
	ImageURL  string `json:"image_url"`

	Ingredients []DishIngredient `json:"ingredients,omitempty" gorm:"foreignKey:DishID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type MeasurementUnit struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	Abbreviation string `json:"abbreviation" gorm:"not null"`
}

type Ingredient struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Name              string          `json:"name" gorm:"not null"`
	UnitCost          float64         `json:"unit_cost" gorm:"not null"`
	MeasurementUnitID uint            `json:"measurement_unit_id" gorm:"not null"`
	MeasurementUnit   MeasurementUnit `json:"measurement_unit,omitempty" gorm:"foreignKey:MeasurementUnitID"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// DishIngredient links a dish to an ingredient with the quantity used per
// portion. Subtotal is frozen at link time (quantity × unit cost then); it is
// not recomputed when the ingredient's cost changes later.
type DishIngredient struct {
	DishID       uint       `json:"dish_id" gorm:"primaryKey"`
	IngredientID uint       `json:"ingredient_id" gorm:"primaryKey"`
	Ingredient   Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
	Quantity     float64    `json:"quantity" gorm:"not null"`
	Subtotal     float64    `json:"subtotal" gorm:"not null"`
}
