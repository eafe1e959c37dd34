package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/customers"
	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg config.Config, log *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	listings := cache.NewListingCache(rdb, log)

	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo, log)
	invoiceService := invoices.NewService(invoiceRepo, listings, log)
	customerService := customers.NewService(customerRepo, log)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiration, log)

	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, log)
	customerHandler := handler.NewCustomerHandler(customerService, log)
	authHandler := handler.NewAuthHandler(authService, log)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/login", authHandler.Login)

	// Dashboard overview routes
	dash := api.Group("/dashboard")
	dash.GET("/cards", dashboardHandler.Cards)
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)

	// Invoice routes
	inv := api.Group("/invoices")
	{
		inv.GET("", invoiceHandler.List)
		inv.GET("/pages", invoiceHandler.Pages)
		inv.GET("/:id", invoiceHandler.GetByID)
		inv.POST("", invoiceHandler.Create)
		inv.PUT("/:id", invoiceHandler.Update)
		inv.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer routes
	cus := api.Group("/customers")
	{
		cus.GET("", customerHandler.List)
		cus.GET("/filtered", customerHandler.Filtered)
	}
}
