// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/inventory-tracker/internal/config"
	"github.com/javajoker/inventory-tracker/internal/handlers"
	"github.com/javajoker/inventory-tracker/internal/i18n"
	"github.com/javajoker/inventory-tracker/internal/middleware"
	"github.com/javajoker/inventory-tracker/internal/repository"
	"github.com/javajoker/inventory-tracker/internal/services"
	"github.com/javajoker/inventory-tracker/internal/utils"
)

const version = "1.0.0"

// Initialize wires the product API onto db. Background work started here
// stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	store := repository.NewProductRepository(db)
	productService := services.NewProductService(store, cfg)
	importService := services.NewImportService(store, cfg)
	exportService := services.NewExportService(store)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, importService, exportService, cfg)

	generalLimiter := middleware.GeneralRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	uploadLimiter := middleware.UploadRateLimiter(cfg.RateLimit.UploadsPerMinute)
	go generalLimiter.Run(ctx.Done())
	go uploadLimiter.Run(ctx.Done())

	// Initialize Gin router
	r := gin.New()
	if cfg.Inventory.MaxUploadSize > 0 {
		r.MaxMultipartMemory = cfg.Inventory.MaxUploadSize
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Actor(cfg.Inventory.DefaultActor))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": version,
		})
	})

	api := r.Group("/api")
	api.Use(generalLimiter.Middleware())
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/export", productHandler.ExportProducts)
			products.POST("/import", uploadLimiter.Middleware(), productHandler.ImportProducts)
			products.GET("/import/template", productHandler.ImportTemplate)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.GET("/:id/history", productHandler.GetHistory)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyRouteNotFound), nil)
	})

	return r
}
