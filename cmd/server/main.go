package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"trace_app_go/config"
	"trace_app_go/db"
	"trace_app_go/handlers"
	"trace_app_go/logger"
	"trace_app_go/middleware"
	"trace_app_go/models"
	"trace_app_go/services"
	"trace_app_go/services/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "trace")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	database, err := db.Open(cfg.DBPath, cfg.Environment, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database, &models.Complaint{}, &models.Admin{}, &models.AdminSession{}); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth := services.NewAdminAuth(database, zlog)
	if cfg.AdminBootstrapPassword != "" {
		created, err := auth.EnsureBootstrapAdmin(ctx, cfg.AdminBootstrapPassword)
		if err != nil {
			zlog.Fatal("Failed to create bootstrap admin", zap.Error(err))
		}
		if created {
			zlog.Info("Bootstrap admin created", zap.String("username", services.BootstrapAdminUsername))
		}
	}

	store := services.NewComplaintStore(database)
	pool, err := services.NewOfficerPool(services.DefaultOfficers, nil)
	if err != nil {
		zlog.Fatal("Failed to build officer pool", zap.Error(err))
	}
	assigner := services.NewAssigner(store, pool, services.NewEmailNotifier(cfg, zlog), zlog)

	// Assignment scheduling backend
	var scheduler services.AssignmentScheduler
	var timers *jobs.TimerScheduler
	switch cfg.SchedulerBackend {
	case config.SchedulerBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		redisScheduler := jobs.NewRedisScheduler(client, assigner, cfg.RedisPollInterval, zlog)
		go func() {
			if err := redisScheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zlog.Error("Redis assignment poller stopped", zap.Error(err))
			}
		}()
		scheduler = redisScheduler
	default:
		timers = jobs.NewTimerScheduler(assigner, zlog)
		scheduler = timers
	}
	zlog.Info("Assignment scheduler ready",
		zap.String("backend", cfg.SchedulerBackend),
		zap.Duration("delay", cfg.AssignmentDelay),
	)

	// Entity extraction
	var extractor services.EntityExtractor = services.NewProseExtractor()
	if cfg.OpenAIAPIKey != "" {
		extractor = services.NewOpenAIExtractor(cfg.OpenAIAPIKey, cfg.OpenAIModel, "")
		zlog.Info("Entity extraction via OpenAI", zap.String("model", cfg.OpenAIModel))
	}

	intake := services.NewIntakeService(store, extractor, scheduler, cfg.AssignmentDelay, zlog)
	storage := services.NewStorage(cfg, zlog)

	// Background jobs
	sweep := jobs.NewRecoverySweep(store, assigner, zlog)
	if n := sweep.Run(ctx); n > 0 {
		zlog.Info("Recovered overdue assignments at startup", zap.Int("count", n))
	}
	exportJob := jobs.NewExportJob(store, storage, zlog)
	cronRunner, err := jobs.StartScheduler(jobs.Schedules{
		Sweep:    cfg.AssignmentSweepSchedule,
		Export:   cfg.ExportSchedule,
		Sessions: "@hourly",
		Timezone: cfg.Timezone,
	}, sweep, exportJob, auth, zlog)
	if err != nil {
		zlog.Fatal("Failed to start cron scheduler", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestLogger(zlog))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "same-origin",
	}))
	e.Use(middleware.CSPNonce())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	h := handlers.New(database, intake, store, auth, storage, exportJob, services.DefaultPDFOptions(cfg.ChromePath), zlog)
	handlers.RegisterRoutes(e, h, auth, middleware.CSRF(cfg.IsProduction()))

	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("Server shutdown failed", zap.Error(err))
	}
	<-cronRunner.Stop().Done()
	if timers != nil {
		// Let armed assignments finish before the database closes
		timers.Wait()
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
