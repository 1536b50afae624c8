package main

import (
	"catalog-service/internal/catalog"
	"catalog-service/internal/handler"
	mid "catalog-service/internal/middleware"
	"catalog-service/internal/store"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	db := database.GetDB()
	svc := catalog.NewService(
		store.NewCategoryGormStore(db),
		store.NewBrandGormStore(db),
		store.NewSupplierGormStore(db),
		store.NewProductGormStore(db),
		store.NewUserGormStore(db),
	)

	authHandler := handler.NewAuthHandler(svc)
	categoryHandler := handler.NewCategoryHandler(svc)
	brandHandler := handler.NewBrandHandler(svc)
	supplierHandler := handler.NewSupplierHandler(svc)
	productHandler := handler.NewProductHandler(svc)
	userHandler := handler.NewUserHandler(svc)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Authentication
	e.POST("/api/auth/login", authHandler.Login)

	// Category API routes
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.GET("", categoryHandler.List)
	categoryAPI.GET("/:id", categoryHandler.Get)
	categoryAPI.POST("", categoryHandler.Create)
	categoryAPI.PUT("/:id", categoryHandler.Update)
	categoryAPI.DELETE("/:id", categoryHandler.Delete)
	categoryAPI.POST("/:id/restore", categoryHandler.Restore)
	categoryAPI.DELETE("/:id/force", categoryHandler.ForceDelete)

	// Brand API routes
	brandAPI := e.Group("/api/brands", mid.AuthMiddleware)
	brandAPI.GET("", brandHandler.List)
	brandAPI.GET("/:id", brandHandler.Get)
	brandAPI.POST("", brandHandler.Create)
	brandAPI.PUT("/:id", brandHandler.Update)
	brandAPI.DELETE("/:id", brandHandler.Delete)
	brandAPI.POST("/:id/restore", brandHandler.Restore)
	brandAPI.DELETE("/:id/force", brandHandler.ForceDelete)

	// Supplier API routes
	supplierAPI := e.Group("/api/suppliers", mid.AuthMiddleware)
	supplierAPI.GET("", supplierHandler.List)
	supplierAPI.GET("/:id", supplierHandler.Get)
	supplierAPI.POST("", supplierHandler.Create)
	supplierAPI.PUT("/:id", supplierHandler.Update)
	supplierAPI.DELETE("/:id", supplierHandler.Delete)
	supplierAPI.POST("/:id/restore", supplierHandler.Restore)
	supplierAPI.DELETE("/:id/force", supplierHandler.ForceDelete)

	// Product API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", productHandler.List)
	productAPI.GET("/:id", productHandler.Get)
	productAPI.POST("", productHandler.Create)
	productAPI.PUT("/:id", productHandler.Update)
	productAPI.DELETE("/:id", productHandler.Delete)
	productAPI.POST("/:id/restore", productHandler.Restore)
	productAPI.DELETE("/:id/force", productHandler.ForceDelete)

	// User directory for the audit filters
	userAPI := e.Group("/api/users", mid.AuthMiddleware)
	userAPI.GET("", userHandler.List)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
