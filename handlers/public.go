package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/models"
	"rotiseria-api/statemachine"

	"github.com/gin-gonic/gin"
)

// dishView is what the mobile app sees: no cost data
type dishView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

func toDishView(d models.Dish) dishView {
	return dishView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.SalePrice,
		ImageURL:    d.ImageURL,
	}
}

// ListDishes returns the available dishes. An empty list is a valid result,
// not an error — the app uses it to clear its state.
func ListDishes(c *gin.Context) {
	var dishes []models.Dish
	query := config.DB.Where("available = ?", true)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Order("name asc").Find(&dishes)

	views := make([]dishView, 0, len(dishes))
	for _, d := range dishes {
		views = append(views, toDishView(d))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(views), "dishes": views})
}

// GetDish returns a single available dish
func GetDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.Where("available = ?", true).First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish": toDishView(dish)})
}

// GetStateMachineInfo returns the order state machine for informational
// purposes, generated from the real transition table
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Rotiseria Order Lifecycle State Machine",
	})
}
