package routes

import (
	"rotiseria-api/handlers"
	"rotiseria-api/middleware"
	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/panel-login", handlers.PanelLogin)
		public.POST("/auth/logout", handlers.Logout)

		// Menu for the mobile app (no auth needed)
		public.GET("/dishes", handlers.ListDishes)
		public.GET("/dishes/:id", handlers.GetDish)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Client routes ──────────────────────────────────────────────
	client := r.Group("/api/client")
	client.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleClient))
	{
		client.POST("/orders", handlers.PlaceOrder)
		client.GET("/orders", handlers.GetMyOrders)
		client.GET("/orders/:id", handlers.GetOrderDetail)
		client.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}

	// ── Kitchen routes (cook and admin) ────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCook, models.RoleAdmin))
	{
		// Dish management
		kitchen.GET("/dishes", handlers.ListAllDishes)
		kitchen.POST("/dishes", handlers.CreateDish)
		kitchen.PUT("/dishes/:id", handlers.UpdateDish)
		kitchen.DELETE("/dishes/:id", handlers.DeleteDish)
		kitchen.PUT("/dishes/:id/availability", handlers.SetDishAvailability)

		// Ingredient catalog
		kitchen.GET("/ingredients", handlers.ListIngredients)
		kitchen.POST("/ingredients", handlers.CreateIngredient)
		kitchen.PUT("/ingredients/:id/cost", handlers.UpdateIngredientCost)
		kitchen.GET("/units", handlers.ListMeasurementUnits)
		kitchen.POST("/units", handlers.CreateMeasurementUnit)

		// Order management
		kitchen.GET("/orders", handlers.GetKitchenOrders)
		kitchen.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Cadet routes ───────────────────────────────────────────────
	cadet := r.Group("/api/cadet")
	cadet.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCadet))
	{
		cadet.GET("/orders/claimable", handlers.GetClaimableOrders)
		cadet.GET("/orders/my-deliveries", handlers.GetMyDeliveries)
		cadet.PUT("/orders/:id/claim", handlers.ClaimOrder)
		cadet.PUT("/orders/:id/deliver", handlers.DeliverOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/reports/profit", handlers.GetProfitReport)
		admin.GET("/reports/ingredient-costs", handlers.GetIngredientCostReport)
	}
}
