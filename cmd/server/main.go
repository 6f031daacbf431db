package main

import (
	"context"
	"net/http"
	"os"

	_ "shopsphere/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopsphere/internal/auth"
	"shopsphere/internal/cache"
	"shopsphere/internal/config"
	"shopsphere/internal/db"
	"shopsphere/internal/handler"
	"shopsphere/internal/logger"
	"shopsphere/internal/repository"
	"shopsphere/internal/router"
	"shopsphere/internal/seed"
	"shopsphere/internal/service"
)

// @title ShopSphere Catalog API
// @version 1.0
// @description E-commerce catalog API with category/product/order CRUD and JWT authentication.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Error("database init", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Error("auto-migrate", "error", err)
		os.Exit(1)
	}

	// Bootstrap the demo catalog and default admin on first run.
	if err := seed.Run(context.Background(), gormDB, log); err != nil {
		log.Error("seed", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	productService := service.NewProductService(productRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		categoryHandler,
		orderHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info("starting server", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Error("server start", "error", err)
		os.Exit(1)
	}
}
