package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siteops/backend/internal/application/dashboard"
	plantapp "github.com/siteops/backend/internal/application/plant"
	ppeapp "github.com/siteops/backend/internal/application/ppe"
	workforceapp "github.com/siteops/backend/internal/application/workforce"
	"github.com/siteops/backend/internal/infrastructure/config"
	"github.com/siteops/backend/internal/infrastructure/event"
	"github.com/siteops/backend/internal/infrastructure/logger"
	"github.com/siteops/backend/internal/infrastructure/persistence"
	"github.com/siteops/backend/internal/interfaces/http/handler"
	"github.com/siteops/backend/internal/interfaces/http/middleware"
	"github.com/siteops/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SiteOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("first_day_of_week", cfg.Workweek.FirstDay),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run schema migration", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	sizeRepo := persistence.NewGormSizeOptionRepository(db.DB)
	txnRepo := persistence.NewGormStockTransactionRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	entryRepo := persistence.NewGormTimeEntryRepository(db.DB)
	checkRepo := persistence.NewGormPlantCheckRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)

	firstDay := cfg.Workweek.FirstDayOfWeek()

	// Application services
	stockService := ppeapp.NewStockService(itemRepo, sizeRepo, txnRepo, eventBus, log)
	importService := ppeapp.NewStockReceiptImportService(itemRepo, sizeRepo, txnRepo,
		ppeapp.WithMaxErrors(cfg.Import.MaxErrors),
		ppeapp.WithEventBus(eventBus),
		ppeapp.WithLogger(log),
	)
	clockService := workforceapp.NewTimeClockService(employeeRepo, entryRepo,
		workforceapp.WithLogger(log),
	)
	timesheetService := workforceapp.NewTimesheetService(employeeRepo, entryRepo,
		workforceapp.WithFirstDayOfWeek(firstDay),
	)
	checkService := plantapp.NewPlantCheckService(checkRepo,
		plantapp.WithFirstDayOfWeek(firstDay),
		plantapp.WithLogger(log),
	)
	statsService := dashboard.NewStatsService(employeeRepo, entryRepo, txnRepo, checkRepo,
		dashboard.WithLowStockThreshold(cfg.Dashboard.LowStockThreshold),
		dashboard.WithFirstDayOfWeek(firstDay),
	)

	// HTTP handlers
	healthHandler := handler.NewHealthHandler(db, version)
	stockHandler := handler.NewStockHandler(stockService)
	importHandler := handler.NewStockImportHandler(importService, cfg.Import.MaxFileSize)
	timeClockHandler := handler.NewTimeClockHandler(clockService)
	timesheetHandler := handler.NewTimesheetHandler(timesheetService)
	plantHandler := handler.NewPlantCheckHandler(checkService)
	dashboardHandler := handler.NewDashboardHandler(statsService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Liveness probe outside API versioning
	engine.GET("/health", healthHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(healthHandler).
		Register(stockHandler).
		Register(importHandler).
		Register(timeClockHandler).
		Register(timesheetHandler).
		Register(plantHandler).
		Register(dashboardHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
