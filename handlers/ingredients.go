package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
)

type SaveIngredientRequest struct {
	Name              string  `json:"name" binding:"required"`
	UnitCost          float64 `json:"unit_cost" binding:"required,gt=0"`
	MeasurementUnitID uint    `json:"measurement_unit_id" binding:"required"`
}

// ListIngredients returns every ingredient with its measurement unit
func ListIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	config.DB.Preload("MeasurementUnit").Order("name asc").Find(&ingredients)
	c.JSON(http.StatusOK, gin.H{"count": len(ingredients), "ingredients": ingredients})
}

// CreateIngredient adds an ingredient to the catalog
func CreateIngredient(c *gin.Context) {
	var req SaveIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var unit models.MeasurementUnit
	if err := config.DB.First(&unit, req.MeasurementUnitID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Measurement unit not found"})
		return
	}

	ingredient := models.Ingredient{
		Name:              req.Name,
		UnitCost:          req.UnitCost,
		MeasurementUnitID: unit.ID,
	}
	if err := config.DB.Create(&ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ingredient created", "ingredient": ingredient})
}

// UpdateIngredientCost changes an ingredient's unit cost. Existing dish
// subtotals keep their frozen values until the dish is edited again.
func UpdateIngredientCost(c *gin.Context) {
	var req struct {
		UnitCost float64 `json:"unit_cost" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	config.DB.Model(&ingredient).Update("unit_cost", req.UnitCost)
	c.JSON(http.StatusOK, gin.H{"message": "Unit cost updated", "ingredient": ingredient})
}

// ListMeasurementUnits returns the unit catalog
func ListMeasurementUnits(c *gin.Context) {
	var units []models.MeasurementUnit
	config.DB.Order("name asc").Find(&units)
	c.JSON(http.StatusOK, gin.H{"count": len(units), "units": units})
}

// CreateMeasurementUnit adds a measurement unit
func CreateMeasurementUnit(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Abbreviation string `json:"abbreviation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit := models.MeasurementUnit{Name: req.Name, Abbreviation: req.Abbreviation}
	if err := config.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Unit already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Unit created", "unit": unit})
}
