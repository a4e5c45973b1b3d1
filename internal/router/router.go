package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saripos/internal/handlers"
	"saripos/internal/middleware"
	"saripos/internal/models"
)

// New wires every route. Role gates follow the three views: the till
// belongs to cashiers, stock management to inventory staff, and the
// back office to the admin — with the admin allowed everywhere.
func New(h *handlers.Handler, origins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)
	r.GET("/api/system/status", h.GetSystemStatus)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// ALL STAFF
		api.POST("/logout", h.Logout)
		api.GET("/products", h.GetProducts)
		api.GET("/products/scan/:barcode", h.ScanProduct)
		api.GET("/notifications", h.GetNotifications)
		api.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		api.GET("/settings", h.GetSettings)

		// CASHIER & ADMIN: the till
		till := api.Group("/")
		till.Use(middleware.RequireRole(models.RoleCashier, models.RoleAdmin))
		{
			till.GET("/cart", h.GetCart)
			till.POST("/cart/items", h.AddToCart)
			till.PATCH("/cart/items/:productId", h.UpdateCartLine)
			till.DELETE("/cart/items/:productId", h.RemoveCartLine)
			till.DELETE("/cart", h.ClearCart)
			till.POST("/checkout", h.Checkout)
			till.GET("/ai/tagline", h.ReceiptTagline)
		}

		// INVENTORY STAFF & ADMIN: stock management
		stock := api.Group("/")
		stock.Use(middleware.RequireRole(models.RoleInventory, models.RoleAdmin))
		{
			stock.GET("/products/low-stock", h.GetLowStock)
			stock.POST("/deliveries", h.SubmitDelivery)
			stock.GET("/deliveries", h.GetDeliveries)
			stock.POST("/ai/restock", h.RestockAdvice)
		}

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.POST("/deliveries/:id/approve", h.ApproveDelivery)
			admin.POST("/deliveries/:id/reject", h.RejectDelivery)
			admin.GET("/users", h.GetUsers)
			admin.POST("/users", h.AddUser)
			admin.DELETE("/users/:id", h.DeleteUser)
			admin.PUT("/settings", h.UpdateSettings)
			admin.GET("/reports", h.GetSalesReport)
			admin.GET("/reports/valuation", h.GetStockValuation)
			admin.POST("/ai/commentary", h.SalesCommentary)
		}
	}

	return r
}
