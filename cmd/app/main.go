package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"bakery/cmd"
	httpadapter "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres"
	redisadapter "bakery/internal/adapters/out/redis"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := postgres.Open(configs.Database())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if configs.SeedCatalog {
		if err = postgres.Seed(ctx, db, logger); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
	}

	var checkoutGuard ports.CheckoutGuard = redisadapter.NoopCheckoutGuard{}
	if configs.RedisURL != "" {
		rdb, redisErr := redisadapter.Connect(ctx, configs.RedisURL)
		if redisErr != nil {
			log.Fatalf("Error connecting to redis: %v", redisErr)
		}
		defer rdb.Close()
		checkoutGuard = redisadapter.NewCheckoutGuard(rdb, configs.CheckoutKeyTTL)
	} else {
		logger.Warn("REDIS_URL is not set, duplicate checkout protection is disabled")
	}

	authenticator, err := cmd.CreateAuthenticator(configs)
	if err != nil {
		log.Fatalf("Error configuring admin access: %v", err)
	}

	hub := httpadapter.NewHub(logger)
	app := cmd.NewCompositionRoot(db, checkoutGuard, hub, location, logger)

	refreshCustomers := app.CreateRefreshCustomersCommandHandler()
	jobManager := jobs.NewJobManager(&refreshCustomers, configs.CustomerRefreshSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(app.CreateHTTPHandlers(), authenticator, logger)
	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Verifier:     authenticator,
		Hub:          hub,
		Logger:       logger,
		AllowOrigins: configs.CORSAllowOrigins,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	hub.Close()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
