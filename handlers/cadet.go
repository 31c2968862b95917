package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"
	"rotiseria-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetClaimableOrders shows orders leaving the kitchen with no cadet assigned
func GetClaimableOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Client.ClientProfile").
		Where("status = ? AND cadet_id IS NULL", models.StatusInPreparation).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyDeliveries returns the undelivered orders assigned to the cadet
func GetMyDeliveries(c *gin.Context) {
	cadetID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("LineItems.Dish").Preload("Client.ClientProfile").
		Where("cadet_id = ? AND status <> ?", cadetID, models.StatusDelivered).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ClaimOrder assigns an unclaimed order to the cadet and moves it to
// IN_TRANSIT
func ClaimOrder(c *gin.Context) {
	cadetID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Prevent two cadets claiming the same order
	if order.CadetID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been claimed by another cadet"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusInTransit, statemachine.ActorCadet); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":   models.StatusInTransit,
		"cadet_id": cadetID,
	})

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusInTransit,
		ChangedBy:  cadetID,
		Note:       "Cadet claimed the order",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order claimed",
		"order_id": order.ID,
		"status":   models.StatusInTransit,
	})
}

// DeliverOrder marks an assigned order as delivered. The lookup is scoped to
// the calling cadet, so an order assigned to someone else reads as not found.
func DeliverOrder(c *gin.Context) {
	cadetID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Where("id = ? AND cadet_id = ?", c.Param("id"), cadetID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or not assigned to you"})
		return
	}

	if order.Status == models.StatusDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order was already delivered"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, statemachine.ActorCadet); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusDelivered)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusDelivered,
		ChangedBy:  cadetID,
		Note:       "Order delivered to client",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered successfully",
		"order_id": order.ID,
		"status":   models.StatusDelivered,
	})
}
