package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/api"
	"github.com/quietpines/sondera/internal/cli"
	"github.com/quietpines/sondera/internal/config"
	"github.com/quietpines/sondera/internal/db"
	"github.com/quietpines/sondera/internal/logging"
	"github.com/quietpines/sondera/internal/progress"
	"github.com/quietpines/sondera/internal/remote"
	"github.com/quietpines/sondera/internal/services"
)

func main() {
	resetPasswordEmail := flag.String("reset-password", "", "reset the password for the given email and exit")
	clearProgressEmail := flag.String("clear-progress", "", "clear saved onboarding progress for the given email and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	if *resetPasswordEmail != "" {
		if err := cli.RunResetPasswordCommand(cfg.DatabasePath, *resetPasswordEmail); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}
	if *clearProgressEmail != "" {
		if err := cli.RunClearProgressCommand(cfg.DatabasePath, *clearProgressEmail); err != nil {
			log.Fatalf("clear progress failed: %v", err)
		}
		return
	}

	logger := logging.New(cfg.LoggerLevel, cfg.LoggerFormat)
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	repositories := db.NewRepositories(database)

	store, err := buildProgressStore(cfg, repositories)
	if err != nil {
		logger.Fatal("progress store init failed", zap.Error(err))
	}

	var profiles services.ProfileAPI
	if cfg.ProfileServiceURL != "" {
		profiles = remote.NewProfileClient(cfg.ProfileServiceURL)
	}
	var registrations services.RegistrationAPI
	if cfg.RegistrationURL != "" {
		registrations = remote.NewRegistrationClient(cfg.RegistrationURL)
	}

	submissions := services.NewSubmissionService(registrations, logger)
	wizard := services.NewWizardService(
		store,
		profiles,
		repositories.Users,
		submissions,
		services.ValidationRules{EnforceSlotOrder: cfg.EnforceSlotOrder},
		logger,
	)

	handler := api.NewHandler(repositories, wizard, cfg.SecretKey, cfg.CookieSecure, logger)

	app := fiber.New(fiber.Config{
		AppName:               "Sondera",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(api.RequestID)
	app.Use(fiberlogger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Sondera listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DatabasePath),
		zap.String("progress_backend", cfg.ProgressBackend))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildProgressStore(cfg config.Config, repositories *db.Repositories) (progress.Store, error) {
	switch cfg.ProgressBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, err
		}
		return progress.NewRedisStore(client, cfg.RedisPrefix), nil
	case "memory":
		return progress.NewMemoryStore(), nil
	default:
		return repositories.Progress, nil
	}
}
