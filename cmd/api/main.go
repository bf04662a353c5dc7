package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"privfinos/internal/config"
	"privfinos/internal/database"
	"privfinos/internal/handlers"
	"privfinos/internal/logger"
	"privfinos/internal/middleware"
	"privfinos/internal/services"
	"privfinos/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "privfinos/internal/docs" // Import swagger docs
)

// @title           PrivFinOS API
// @version         1.0
// @description     Personal finance bookkeeping API for categories, accounts and transactions.

// @host      localhost:3000
// @BasePath  /api

const appVersion = "1.0.0"

func main() {
	logger.Init(os.Getenv("NODE_ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	db := dbManager.DB()
	categoryService := services.NewCategoryService(db)
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appVersion,
		})
	})

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "PrivFinOS API",
			"version": appVersion,
			"status":  "running",
		})
	})

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.GetAll)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)
	categories.DELETE("/:id/hard", categoryHandler.HardDelete)

	accounts := api.Group("/accounts")
	accounts.GET("", accountHandler.GetAll)
	// Registered before /:id so "balance" is not captured as an ID.
	accounts.GET("/balance/total", accountHandler.GetTotalBalance)
	accounts.GET("/:id", accountHandler.GetByID)
	accounts.GET("/:id/balance", accountHandler.GetBalance)
	accounts.POST("", accountHandler.Create)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)
	accounts.DELETE("/:id/hard", accountHandler.HardDelete)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetAll)
	transactions.GET("/:id", transactionHandler.GetByID)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	registerFallback(router, cfg)

	log.Infof("Starting PrivFinOS API server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}

// registerFallback handles everything outside the registered routes. API
// paths get the uniform 404 envelope; in production, remaining paths serve
// the built frontend with an index.html fallback for client-side routing.
func registerFallback(router *gin.Engine, cfg *config.Config) {
	serveStatic := cfg.Env == "production"
	if serveStatic {
		if _, err := os.Stat(cfg.StaticDir); err != nil {
			logger.Get().Warnw("static directory not found, skipping frontend serving",
				"dir", cfg.StaticDir,
			)
			serveStatic = false
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"message": "Not found",
					"code":    "NOT_FOUND",
				},
			})
			return
		}

		if serveStatic && c.Request.Method == http.MethodGet {
			requested := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(requested); err == nil && !info.IsDir() {
				c.File(requested)
				return
			}
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
			return
		}

		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"message": "Not found",
				"code":    "NOT_FOUND",
			},
		})
	})
}
