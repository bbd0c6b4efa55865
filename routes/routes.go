package routes

import (
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, orders *handlers.OrderHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/menu", handlers.ListMenuItems)
		public.GET("/menu/:id", handlers.GetMenuItem)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		// Ownership/role checks happen inside the order service
		auth.GET("/orders/:id", orders.GetOrderDetails)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", orders.CreateOrder)
		customer.GET("/orders", orders.ListMyOrders)

		customer.GET("/favorites", handlers.ListFavorites)
		customer.POST("/favorites", handlers.AddFavorite)
		customer.DELETE("/favorites/:itemId", handlers.RemoveFavorite)
	}

	// ── Kitchen routes ─────────────────────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleKitchen, models.RoleAdmin))
	{
		kitchen.GET("/queue", orders.KitchenQueue)
		kitchen.GET("/orders", orders.ListAllOrders)
		kitchen.PUT("/orders/:id/status", orders.UpdateOrderStatus)
	}

	// ── Rider routes ───────────────────────────────────────────────
	rider := r.Group("/api/rider")
	rider.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRider, models.RoleAdmin))
	{
		rider.GET("/deliveries", orders.RiderDeliveries)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Orders
		admin.GET("/orders", orders.ListAllOrders)
		admin.PUT("/orders/:id/status", orders.UpdateOrderStatus)
		admin.PUT("/orders/:id/rider", orders.AssignRider)
		admin.PUT("/orders/:id/payment", orders.SetPaymentStatus)

		// Users
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.POST("/users", handlers.AdminCreateStaff)

		// Menu management
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
		admin.POST("/options", handlers.AddCustomizationOption)
		admin.POST("/option-values", handlers.AddCustomizationValue)
	}
}
