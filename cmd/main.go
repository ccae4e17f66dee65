package main

import (
	"context"
	"net/http"

	"finder-service/internal/authz"
	"finder-service/internal/handler"
	mid "finder-service/internal/middleware"
	"finder-service/internal/repository"
	"finder-service/internal/service"
	"finder-service/pkg/config"
	"finder-service/pkg/database"
	"finder-service/pkg/jwtutil"
	"finder-service/pkg/logger"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
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

	log.Info("Starting finder-service",
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

	// Repositories and services
	db := database.GetDB()
	productRepo := repository.NewProductRepository(db)
	termRepo := repository.NewTermRepository(db)
	dealerRepo := repository.NewDealerRepository(db)

	// Attribute schema bootstrap, idempotent
	if err := service.EnsureAttributeSchema(context.Background(), termRepo); err != nil {
		log.Fatal("Failed to ensure attribute schema", zap.Error(err))
	}
	log.Info("Attribute schema ensured")

	brandHandler := handler.NewBrandHandler(service.NewBrandService(termRepo))
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo))
	dealerHandler := handler.NewDealerHandler(service.NewDealerService(productRepo, termRepo, dealerRepo))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	// Schema introspection routes are public
	api.GET("/brands/schema", handler.BrandSchema)
	api.GET("/products/schema", handler.ProductSchema)
	api.GET("/dealer/schema", handler.DealerSchema)

	// Brand routes
	brands := api.Group("/brands", mid.AuthMiddleware)
	brands.GET("", brandHandler.List, mid.Authorize(authz.ResourceBrands, authz.ActionList))
	brands.GET("/:id", brandHandler.Get, mid.Authorize(authz.ResourceBrands, authz.ActionGet))

	// Product routes
	products := api.Group("/products", mid.AuthMiddleware)
	products.GET("", productHandler.List, mid.Authorize(authz.ResourceProducts, authz.ActionList))
	products.GET("/:id", productHandler.Get, mid.Authorize(authz.ResourceProducts, authz.ActionGet))

	// Dealer routes
	dealer := api.Group("/dealer", mid.AuthMiddleware)
	dealer.GET("", dealerHandler.Profile, mid.Authorize(authz.ResourceDealer, authz.ActionProfile))
	dealer.GET("/products", dealerHandler.ListProducts, mid.Authorize(authz.ResourceDealer, authz.ActionList))
	dealer.GET("/products/:id", dealerHandler.GetProduct, mid.Authorize(authz.ResourceDealer, authz.ActionGet))
	dealer.POST("/products", dealerHandler.CreateProduct, mid.Authorize(authz.ResourceDealer, authz.ActionCreate))
	dealer.PUT("/products/:id", dealerHandler.EditProduct, mid.Authorize(authz.ResourceDealer, authz.ActionEdit))
	dealer.PATCH("/products/:id", dealerHandler.EditProduct, mid.Authorize(authz.ResourceDealer, authz.ActionEdit))
	dealer.DELETE("/products/:id", dealerHandler.DeleteProduct, mid.Authorize(authz.ResourceDealer, authz.ActionDelete))

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
