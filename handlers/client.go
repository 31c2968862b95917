package handlers

import (
	"net/http"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"
	"rotiseria-api/statemachine"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	Notes string `json:"notes"`
	Items []struct {
		DishID   uint `json:"dish_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order (client only). A client may only have one
// order in flight at a time.
func PlaceOrder(c *gin.Context) {
	clientID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject if an order is already active
	var active int64
	config.DB.Model(&models.Order{}).
		Where("client_id = ? AND status IN ?", clientID, statemachine.ActiveStatuses()).
		Count(&active)
	if active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have an active order. Wait until it is delivered or cancelled."})
		return
	}

	// Build line items and calculate total
	var lineItems []models.OrderLineItem
	var total float64

	for _, reqItem := range req.Items {
		var dish models.Dish
		if err := config.DB.First(&dish, reqItem.DishID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish not found"})
			return
		}
		if !dish.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish '" + dish.Name + "' is not available"})
			return
		}
		subtotal := dish.SalePrice * float64(reqItem.Quantity)
		total += subtotal
		lineItems = append(lineItems, models.OrderLineItem{
			DishID:   dish.ID,
			Quantity: reqItem.Quantity,
			Subtotal: subtotal,
		})
	}

	order := models.Order{
		ClientID:  clientID,
		Status:    models.StatusPending,
		Total:     total,
		Notes:     req.Notes,
		LineItems: lineItems,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// Record initial status history
	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPending,
		ChangedBy: clientID,
		Note:      "Order placed by client",
	}
	config.DB.Create(&history)

	config.DB.Preload("LineItems.Dish").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns all orders for the logged-in client, newest first
func GetMyOrders(c *gin.Context) {
	clientID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("LineItems.Dish").
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	clientID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.
		Preload("LineItems.Dish").
		Preload("StatusHistory").
		Preload("Cadet").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.ClientID != clientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels an order while the transition table still allows the
// client to do so
func CancelOrder(c *gin.Context) {
	clientID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.ClientID != clientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, statemachine.ActorClient); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot cancel order",
			"reason":         err.Error(),
			"current_status": order.Status,
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusCancelled)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusCancelled,
		ChangedBy:  clientID,
		Note:       "Order cancelled by client",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
