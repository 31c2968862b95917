package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rotiseria-api/config"
	"rotiseria-api/costing"
	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
)

type DishIngredientRequest struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
}

type SaveDishRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	SalePrice   float64                 `json:"sale_price" binding:"required,gt=0"`
	ImageURL    string                  `json:"image_url"`
	LaborPct    float64                 `json:"labor_pct"`
	ManualCost  float64                 `json:"manual_cost"`
	Ingredients []DishIngredientRequest `json:"ingredients"`
}

// buildDishCost resolves ingredient lines against the store and computes the
// dish's total cost. Subtotals are frozen here: quantity × current unit cost.
func buildDishCost(req *SaveDishRequest) (float64, []models.DishIngredient, error) {
	links := make([]models.DishIngredient, 0, len(req.Ingredients))
	lines := make([]costing.Line, 0, len(req.Ingredients))
	for _, ri := range req.Ingredients {
		var ingredient models.Ingredient
		if err := config.DB.First(&ingredient, ri.IngredientID).Error; err != nil {
			return 0, nil, errors.New("ingredient not found: " + strconv.FormatUint(uint64(ri.IngredientID), 10))
		}
		subtotal := ri.Quantity * ingredient.UnitCost
		links = append(links, models.DishIngredient{
			IngredientID: ingredient.ID,
			Quantity:     ri.Quantity,
			Subtotal:     subtotal,
		})
		lines = append(lines, costing.Line{IngredientID: ingredient.ID, Quantity: ri.Quantity, Subtotal: subtotal})
	}

	total, err := costing.TotalCost(lines, req.LaborPct, req.ManualCost)
	if err != nil {
		return 0, nil, err
	}
	// Manual override: ingredient links are still stored for reference
	return total, links, nil
}

// ListAllDishes returns every dish, including disabled ones, with their
// ingredient breakdown — staff view
func ListAllDishes(c *gin.Context) {
	var dishes []models.Dish
	config.DB.Preload("Ingredients.Ingredient.MeasurementUnit").Order("name asc").Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

// CreateDish creates a dish, computing its cost from ingredients + labor or
// a manual override
func CreateDish(c *gin.Context) {
	var req SaveDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalCost, links, err := buildDishCost(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish := models.Dish{
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		TotalCost:   totalCost,
		ImageURL:    req.ImageURL,
		Available:   true,
		Ingredients: links,
	}
	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish created", "dish": dish})
}

// UpdateDish updates a dish and recomputes its cost, replacing the
// ingredient lines
func UpdateDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var req SaveDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalCost, links, err := buildDishCost(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Where("dish_id = ?", dish.ID).Delete(&models.DishIngredient{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
		return
	}
	for i := range links {
		links[i].DishID = dish.ID
	}
	if len(links) > 0 {
		if err := config.DB.Create(&links).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
			return
		}
	}

	config.DB.Model(&dish).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"sale_price":  req.SalePrice,
		"total_cost":  totalCost,
		"image_url":   req.ImageURL,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": dish})
}

// DeleteDish disables a dish. Orders keep their line-item references, so
// dishes are never hard-deleted.
func DeleteDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	config.DB.Model(&dish).Update("available", false)
	c.JSON(http.StatusOK, gin.H{"message": "Dish disabled", "dish_id": dish.ID})
}

// SetDishAvailability toggles whether a dish appears in the public menu
func SetDishAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	config.DB.Model(&dish).Update("available", *req.Available)
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "dish_id": dish.ID, "available": *req.Available})
}
