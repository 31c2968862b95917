package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"
	"rotiseria-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetKitchenOrders returns orders for the kitchen view with a status summary
func GetKitchenOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("LineItems.Dish").Preload("Client").Preload("Cadet")

	if raw := c.Query("status"); raw != "" {
		status, err := statemachine.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query = query.Where("status = ?", status)
	}

	query.Order("created_at asc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// UpdateOrderStatus moves an order through the state machine on behalf of
// the kitchen. The status is parsed at the boundary, so an order can never
// hold an unknown state, and skipping straight from PENDING to DELIVERED is
// rejected by the transition table.
func UpdateOrderStatus(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	actor := statemachine.RoleActor(middleware.GetRole(c))

	var req UpdateOrderStatusRequest
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

	if err := statemachine.CanTransition(order.Status, status, actor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", status)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   status,
		ChangedBy:  actorID,
		Note:       req.Note,
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(status),
	})
}
