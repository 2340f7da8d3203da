package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/corpkit/company-portal/internal/api/http"
	"github.com/corpkit/company-portal/internal/api/http/handlers"
	"github.com/corpkit/company-portal/internal/auth"
	"github.com/corpkit/company-portal/internal/config"
	"github.com/corpkit/company-portal/internal/events"
	"github.com/corpkit/company-portal/internal/observability"
	"github.com/corpkit/company-portal/internal/repository"
	"github.com/corpkit/company-portal/internal/service"
	"github.com/corpkit/company-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.InsecureSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using the built-in development secret, tokens are forgeable")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Telemetry, cfg.App.Name, logger)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}

	meterProvider, shutdownMetrics, err := observability.SetupMetrics(ctx, cfg.Telemetry, cfg.App.Name, logger)
	if err != nil {
		logger.Warn("metrics export disabled", zap.Error(err))
	}
	metrics, err := observability.NewMetrics(meterProvider)
	if err != nil {
		logger.Fatal("failed to create metric instruments", zap.Error(err))
	}

	seed, err := repository.LoadSeed(cfg.Seed.File)
	if err != nil {
		logger.Fatal("failed to load seed", zap.Error(err))
	}
	credentialRepo := repository.NewCredentialRepository(seed)
	logRepo := repository.NewLogRepository(seed)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		CredentialRepo: credentialRepo,
		Dispatcher:     dispatcher,
	})
	logsService := service.NewLogsService(logRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Logs:           handlers.NewLogsHandler(logsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()

	flushCtx, flushCancel := context.WithTimeout(ctx, 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
	if err := shutdownMetrics(flushCtx); err != nil {
		logger.Warn("metrics shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
