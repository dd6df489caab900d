package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Shamsiaa/ForestEye-App/internal/config"
	"github.com/Shamsiaa/ForestEye-App/internal/detector"
	v1 "github.com/Shamsiaa/ForestEye-App/internal/handler/http/v1"
	"github.com/Shamsiaa/ForestEye-App/internal/imagery"
	"github.com/Shamsiaa/ForestEye-App/internal/messaging"
	"github.com/Shamsiaa/ForestEye-App/internal/notifier"
	"github.com/Shamsiaa/ForestEye-App/internal/repository"
	"github.com/Shamsiaa/ForestEye-App/internal/service"
	"github.com/Shamsiaa/ForestEye-App/internal/simulation"
	"github.com/Shamsiaa/ForestEye-App/internal/webhook"
	"github.com/Shamsiaa/ForestEye-App/pkg/logger"
	"github.com/Shamsiaa/ForestEye-App/pkg/postgres"
	redisclient "github.com/Shamsiaa/ForestEye-App/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/Shamsiaa/ForestEye-App/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ForestEye AI Server API
// @version 1.0
// @description Fire/smoke alert backend with a drone-image detection simulation.
// @host localhost:8080
// @BasePath /
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	blobs, err := imagery.NewGCSDownloader(ctx, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}
	log.Infof("Using storage bucket %s", cfg.StorageBucket)

	fireDetector, err := detector.New(cfg.ModelPath, cfg.ModelClassNames, cfg.DetectionConfidence, log)
	if err != nil {
		log.Fatalf("Failed to load detection model: %v", err)
	}
	defer fireDetector.Close()

	// SMS is optional: without Twilio credentials the endpoint reports 500,
	// everything else keeps working.
	var sms service.SMSNotifier
	if twilioNotifier, err := notifier.NewTwilioNotifier(cfg, log); err != nil {
		log.WithError(err).Warn("Twilio client not initialized, SMS sending disabled")
	} else {
		sms = twilioNotifier
	}

	// NATS fan-out of fire events is optional as well.
	var eventPublisher simulation.EventPublisher
	if cfg.NatsURL != "" {
		natsService, err := messaging.NewService(cfg.NatsURL, log)
		if err != nil {
			log.WithError(err).Warn("NATS not available, fire event fan-out disabled")
		} else {
			eventPublisher = natsService
			defer natsService.Shutdown()
		}
	}

	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	alertRepo := repository.NewAlertRepository(dbpool, redisClient)
	forestRepo := repository.NewForestRepository(dbpool)

	imagerySource := imagery.NewSource(forestRepo, blobs, log)
	alertService := service.NewAlertService(alertRepo, sms, log)

	engine := simulation.NewEngine(
		imagerySource,
		fireDetector,
		forestRepo,
		alertRepo,
		eventPublisher,
		alertPublisher,
		log,
		simulation.Config{
			MaxDetections:  cfg.SimMaxDetections,
			DetectionDelay: cfg.SimDetectionDelay,
			StopTimeout:    cfg.SimStopTimeout,
		},
	)

	handler := v1.NewHandler(alertService, engine, log)

	router := gin.Default()
	router.Use(v1.CORSMiddleware())
	handler.RegisterRoutes(router.Group("/"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	engine.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
