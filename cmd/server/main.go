package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/gonzalcbar02/store-controller-web/internal/api"
	"github.com/gonzalcbar02/store-controller-web/internal/config"
	"github.com/gonzalcbar02/store-controller-web/internal/database"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
	"github.com/gonzalcbar02/store-controller-web/internal/handler"
	"github.com/gonzalcbar02/store-controller-web/internal/logger"
	"github.com/gonzalcbar02/store-controller-web/internal/middleware"
)

func main() {
	// 1. Config
	if err := godotenv.Load(); err != nil {
		// Fine in containers; env comes from the orchestrator.
		fmt.Fprintf(os.Stderr, "notice: no .env file, using system environment\n")
	}

	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("starting store controller API",
		"environment", cfg.AppEnv,
		"port", cfg.ApiServicePort,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionTokenRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	cabinetRepo := repository.NewCabinetRepository(db)
	productRepo := repository.NewProductRepository(db)

	// 5. Initialize Session Cache
	sessionCache, err := database.NewSessionCache(cfg, appLogger)
	if err != nil {
		appLogger.Warn("failed to connect to Redis, sessions resolved from Postgres only", "error", err)
		sessionCache = nil
	}
	defer func() {
		if sessionCache != nil {
			sessionCache.Close()
		}
	}()

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, sessionRepo, sessionCache, cfg, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	houseService := service.NewHouseService(houseRepo, userRepo, appLogger)
	cabinetService := service.NewCabinetService(cabinetRepo, houseRepo, appLogger)
	productService := service.NewProductService(productRepo, cabinetRepo, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	houseHandler := handler.NewHouseHandler(houseService, appLogger)
	cabinetHandler := handler.NewCabinetHandler(cabinetService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 8. Setup Router and run
	r := api.SetupRouter(authHandler, userHandler, houseHandler, cabinetHandler, productHandler, authMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("HTTP server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
}
