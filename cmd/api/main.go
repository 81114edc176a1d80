package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lunaalencar/juridico-api/docs" // Swagger docs
	"github.com/lunaalencar/juridico-api/internal/config"
	"github.com/lunaalencar/juridico-api/internal/database"
	"github.com/lunaalencar/juridico-api/internal/handlers"
	"github.com/lunaalencar/juridico-api/internal/jobs"
	"github.com/lunaalencar/juridico-api/internal/middleware"
	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/internal/services"
	"github.com/lunaalencar/juridico-api/internal/storage"
	"github.com/lunaalencar/juridico-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Juridico API
// @version 1.0
// @description REST API for law office installment billing and receivables

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, cfg, db)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, repos, store)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Redirect root to swagger
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})

		// Swagger documentation
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Account management (admin only)
			protected.POST("/auth/register", middleware.RequireAdmin(), h.Auth.Register)

			// Cases
			protected.GET("/cases", h.Case.Index)
			protected.GET("/cases/:case_id", h.Case.Show)
			protected.GET("/cases/:case_id/contracts", h.Case.Contracts)

			// Contracts
			protected.GET("/contracts", h.Contract.Index)
			protected.GET("/contracts/:contract_id", h.Contract.Show)
			protected.POST("/contracts", h.Contract.Create)
			protected.POST("/contracts/:contract_id/down_payment", h.Contract.PostDownPayment)

			// Installments and receivables
			protected.GET("/installments/:installment_id", h.Installment.Show)
			protected.POST("/installments/:installment_id/collect", h.Installment.Collect)
			protected.GET("/receivables", h.Installment.Receivables)

			// Cash ledger
			ledger := protected.Group("/ledger")
			{
				ledger.GET("", h.Ledger.Index)
				ledger.POST("", h.Ledger.Create)
				ledger.GET("/summary", h.Ledger.Summary)
				ledger.GET("/statistics", h.Ledger.Statistics)
				ledger.POST("/:entry_id/receipt", h.Ledger.UploadReceipt)
				ledger.GET("/:entry_id/receipt", h.Ledger.DownloadReceipt)
			}

			// Reports
			protected.GET("/reports/ledger_csv", h.Report.LedgerCSV)
			protected.GET("/reports/ledger_xlsx", h.Report.LedgerXLSX)
			protected.GET("/reports/receivables_pdf", h.Report.ReceivablesPDF)

			// Audits (admin only)
			protected.GET("/audits", middleware.RequireAdmin(), h.Audit.Index)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	if cfg.ReconcileIntervalMinutes <= 0 {
		logger.Warn("Ledger reconciliation sweep disabled")
		return
	}
	interval := time.Duration(cfg.ReconcileIntervalMinutes) * time.Minute

	// Re-post cash entries for paid installments that are missing one
	worker.ScheduleEvery(interval, func(ctx context.Context) error {
		logger.Info("[Job] Reconciling cash ledger...")
		_, err := svcs.Collection.Reconcile(ctx)
		return err
	})

	logger.Info("Scheduled recurring jobs")
}
