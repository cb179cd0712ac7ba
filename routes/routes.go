package routes

import (
	"kobit-api/handlers"
	"kobit-api/middleware"
	"kobit-api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth, rate limited per IP
		auth := public.Group("/auth")
		auth.Use(middleware.RateLimit(rate.Limit(1), 3))
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/menu", h.GetMenu)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/profile", h.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Cart
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddCartItem)
		customer.PUT("/cart/items/:id", h.UpdateCartItem)
		customer.DELETE("/cart/items/:id", h.RemoveCartItem)
		customer.DELETE("/cart", h.ClearCart)

		// Orders
		customer.POST("/checkout", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.GET("/orders/:id", h.GetOrderDetail)
		customer.PUT("/orders/:id/cancel", h.CancelOrder)

		// Bank transfer proof
		customer.POST("/payments/confirm", h.SubmitPaymentConfirmation)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", h.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.GET("/orders/export", h.AdminExportOrders)
		admin.GET("/orders/live", h.AdminOrderFeed)

		admin.GET("/payments", h.AdminGetPayments)
		admin.PUT("/payments/:id/review", h.AdminReviewPayment)

		admin.GET("/customers", h.AdminGetCustomers)
		admin.GET("/stats", h.AdminGetStats)

		admin.POST("/menu", h.AdminAddMenuItem)
		admin.PUT("/menu/:itemId", h.AdminUpdateMenuItem)
		admin.DELETE("/menu/:itemId", h.AdminDeleteMenuItem)
	}
}
