package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/config"
	"github.com/piresc/towjek/internal/pkg/database"
	"github.com/piresc/towjek/internal/pkg/health"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/metrics"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/nats"
	nrpkg "github.com/piresc/towjek/internal/pkg/newrelic"
	"github.com/piresc/towjek/internal/pkg/retry"
	"github.com/piresc/towjek/internal/pkg/server"
	"github.com/piresc/towjek/internal/utils"
	"github.com/piresc/towjek/services/rides/gateway"
	"github.com/piresc/towjek/services/rides/handler"
	"github.com/piresc/towjek/services/rides/repository"
	"github.com/piresc/towjek/services/rides/usecase"
)

func main() {
	configPath := "config/rides.env"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Dependencies may still be starting alongside the service
	bootCtx, bootCancel := context.WithTimeout(context.Background(), time.Minute)
	defer bootCancel()

	var postgresClient *database.PostgresClient
	err = retry.Do(bootCtx, "postgres", retry.DefaultConfig(), func(context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.ApplySchema(schemaCtx, postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to apply database schema", logger.Err(err))
	}
	schemaCancel()

	// Redis backs the proposal rate limiter
	var redisClient *database.RedisClient
	err = retry.Do(bootCtx, "redis", retry.DefaultConfig(), func(context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	var natsClient *nats.Client
	err = retry.Do(bootCtx, "nats", retry.DefaultConfig(), func(context.Context) error {
		var connErr error
		natsClient, connErr = nats.NewClient(configs.NATS.URL, appName)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	logger.Info("NATS client initialized",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	ridesGW := gateway.NewRideGW(natsClient)

	rideUC, err := usecase.NewRideUC(configs, rideRepo, ridesGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	rideHandler := handler.NewHandler(rideUC, redisClient, configs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.EchoMiddleware())

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	rideHandler.RegisterRoutes(e)

	// Expire overdue proposals in the background; acceptance also checks expiry on its own
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go usecase.NewSweeper(rideUC, configs.Rides.SweepInterval).Run(sweepCtx)

	hooks := server.NewShutdownManager()
	hooks.Register("sweeper", func(context.Context) error {
		stopSweeper()
		return nil
	})
	hooks.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	hooks.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	hooks.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		hooks.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if err := server.NewGracefulServer(e, addr, shutdownTimeout, hooks).Run(ctx); err != nil {
		zapLogger.Error("HTTP server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
