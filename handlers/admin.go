package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"
	"rotiseria-api/reporting"
	"rotiseria-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminGetAllOrders returns all orders with full detail and a revenue summary
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("LineItems.Dish").
		Preload("Client").Preload("Cadet").Preload("StatusHistory")

	if raw := c.Query("status"); raw != "" {
		status, err := statemachine.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if cadetID := c.Query("cadet_id"); cadetID != "" {
		query = query.Where("cadet_id = ?", cadetID)
	}

	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetAllUsers returns all users with their variant profiles
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB.Preload("ClientProfile").Preload("CadetProfile").Preload("CookProfile")
	if raw := c.Query("role"); raw != "" {
		role, ok := models.NormalizeRole(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + raw})
			return
		}
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminForceOrderStatus lets admin override any order state (emergency use).
// The override skips the transition table entirely; only the closed status
// enum is enforced, so even PENDING to DELIVERED is allowed here.
func AdminForceOrderStatus(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := statemachine.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", status)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   status,
		ChangedBy:  adminID,
		Note:       "[ADMIN OVERRIDE] " + req.Reason,
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status force-updated by admin",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      status,
	})
}

// GetProfitReport returns the per-dish profit breakdown with aggregate
// totals. Disabled dishes are included.
func GetProfitReport(c *gin.Context) {
	var dishes []models.Dish
	config.DB.Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"report": reporting.ProfitReport(dishes)})
}

// GetIngredientCostReport lists every ingredient's unit cost
func GetIngredientCostReport(c *gin.Context) {
	var ingredients []models.Ingredient
	config.DB.Preload("MeasurementUnit").Order("name asc").Find(&ingredients)
	c.JSON(http.StatusOK, gin.H{"report": reporting.IngredientCosts(ingredients)})
}
