// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"facturier/internal/domain/customer"
	"facturier/internal/domain/invoice"
	"facturier/internal/infrastructure/http/v1/handlers"
	"facturier/internal/infrastructure/http/v1/middleware"
	"facturier/internal/infrastructure/storage/postgres"
	"facturier/internal/infrastructure/storage/postgres/catalog_repo"
	"facturier/internal/infrastructure/storage/postgres/document_repo"
	"facturier/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager manages database transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuditService records document events
	AuditService *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Wire repositories and services
	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	invoiceRepo := document_repo.NewInvoiceRepo(cfg.TxManager)

	customerService := customer.NewService(customerRepo)
	invoiceService := invoice.NewService(invoiceRepo, productRepo, cfg.TxManager, cfg.AuditService)

	baseHandler := handlers.NewBaseHandler()
	invoiceHandler := handlers.NewInvoiceHandler(baseHandler, invoiceService, cfg.AuditService)
	customerHandler := handlers.NewCustomerHandler(baseHandler, customerService, invoiceService)

	// API v1 (JWT protected)
	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.Auth(cfg.JWTValidator))
	{
		apiV1.POST("/invoices", invoiceHandler.Create)
		apiV1.GET("/invoices/:id", invoiceHandler.GetByID)
		apiV1.GET("/invoices/:id/history", middleware.RequireAdmin(), invoiceHandler.History)

		apiV1.GET("/customers", customerHandler.ListByCity)
		apiV1.GET("/customers/:id", customerHandler.Get)
		apiV1.GET("/customers/:id/stats", customerHandler.Stats)

		apiV1.GET("/stats", customerHandler.GlobalStats)
	}

	return router
}
