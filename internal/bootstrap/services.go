package bootstrap

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

	"github.com/redis/go-redis/v9"

	"github.com/sustainastock/sustainastock-ui/config"
	"github.com/sustainastock/sustainastock-ui/internal/adapters/inventoryapi"
	httpx "github.com/sustainastock/sustainastock-ui/internal/http"
	"github.com/sustainastock/sustainastock-ui/internal/observability/statsd"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	API           *inventoryapi.Client
	Auth          AuthBundle
	Inventory     *service.InventoryService
	Flash         ports.FlashStore
	HealthChecks  []httpx.HealthCheck
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// sink returns the metrics sink as an interface, nil when metrics are off.
//
//nolint:ireturn // the services take the interface.
func (o ObservabilityContainer) sink() statsd.Sink {
	if o.MetricsSink == nil {
		return nil
	}
	return o.MetricsSink
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// buildObservability configures the StatsD sink. Failures disable metrics.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	out := ObservabilityContainer{MetricsConfig: cfg.Metrics}
	if !cfg.Metrics.IsEnabled() {
		return out
	}

	prefix := cfg.Metrics.Prefix
	if prefix == "" {
		prefix = "sustainastock"
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return out
	}
	out.MetricsSink = client
	return out
}

// NewServices wires the API client, auth and inventory services, the flash
// store and the health checks.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	obs := buildObservability(logger, cfg.Observability)

	api, err := NewAPIClient(APIClientConfig{
		API:     cfg.API,
		Auth:    cfg.Auth,
		Metrics: obs.sink(),
		Logger:  logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	auth, err := BuildAuth(AuthConfig{
		Auth:         cfg.Auth,
		CookieDomain: cfg.HTTP.CookieDomain,
		API:          api,
		Logger:       logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	inventory := service.NewInventoryService(service.InventoryServiceOptions{
		API:     api,
		Metrics: obs.sink(),
		Logger:  logger,
	})

	flash := NewFlashStore(FlashStoreConfig{
		Flash:       cfg.Flash,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	return ServiceContainer{
		API:           api,
		Auth:          auth,
		Inventory:     inventory,
		Flash:         flash,
		HealthChecks:  buildHealthChecks(deps.RedisClient),
		Observability: obs,
	}, nil
}

// buildHealthChecks covers the dependencies this process owns. The inventory
// API is not checked; pages report its outages themselves.
func buildHealthChecks(rdb redis.UniversalClient) []httpx.HealthCheck {
	var checks []httpx.HealthCheck
	if rdb != nil {
		checks = append(checks, httpx.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return checks
}

// Close releases the resources held by the container.
func (c ServiceContainer) Close() error {
	if c.Observability.MetricsSink != nil {
		return c.Observability.MetricsSink.Close()
	}
	return nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until SIGINT,
// SIGTERM or a server failure, then shuts down gracefully.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	return waitForShutdown(shutdownConfig{
		errCh:       errCh,
		httpServer:  server,
		timeout:     cfg.Config.HTTP.ShutdownTimeout,
		services:    cfg.Services,
		redisClient: cfg.RedisClient,
		logger:      logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	errCh       <-chan error
	httpServer  *http.Server
	timeout     time.Duration
	services    ServiceContainer
	redisClient redis.UniversalClient
	logger      *slog.Logger
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains the HTTP server, then closes Redis and the metrics sink.
func gracefulStop(cfg shutdownConfig) error {
	var errs []error
	if err := ShutdownHTTPServer(ShutdownConfig{
		Context: context.Background(),
		Server:  cfg.httpServer,
		Timeout: cfg.timeout,
		Logger:  cfg.logger,
	}); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if cfg.redisClient != nil {
		if err := cfg.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := cfg.services.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close services: %w", err))
	}
	return errors.Join(errs...)
}
