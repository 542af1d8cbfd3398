package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/sustainastock/sustainastock-ui/config"
	"github.com/sustainastock/sustainastock-ui/internal/adapters/inventoryapi"
	"github.com/sustainastock/sustainastock-ui/internal/adapters/memory"
	redisadapter "github.com/sustainastock/sustainastock-ui/internal/adapters/redis"
	"github.com/sustainastock/sustainastock-ui/internal/observability/statsd"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// APIClientConfig contains configuration for the inventory API client.
type APIClientConfig struct {
	API     config.APIConfig
	Auth    config.AuthConfig
	Metrics statsd.Sink
	Logger  *slog.Logger
}

// NewAPIClient builds the REST client shared by the auth and inventory services.
func NewAPIClient(cfg APIClientConfig) (*inventoryapi.Client, error) {
	client, err := inventoryapi.New(inventoryapi.Config{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout,
		TokenCookieName: cfg.Auth.CookieName,
		Metrics:         cfg.Metrics,
		Logger:          cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create inventory api client: %w", err)
	}
	return client, nil
}

// FlashStoreConfig contains configuration for the notification store.
type FlashStoreConfig struct {
	Flash       config.FlashConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewFlashStore picks the notification store. The redis backend falls back to
// memory when no client is available.
//
//nolint:ireturn // callers only need the port.
func NewFlashStore(cfg FlashStoreConfig) ports.FlashStore {
	if cfg.Flash.UsesRedis() {
		if cfg.RedisClient != nil {
			return redisadapter.NewFlashStoreWithOptions(cfg.RedisClient, redisadapter.FlashStoreOptions{
				Prefix: cfg.Flash.Prefix,
				TTL:    cfg.Flash.TTL,
			})
		}
		if cfg.Logger != nil {
			cfg.Logger.Warn("redis flash backend selected without a redis client; using memory")
		}
	}
	return memory.NewFlashStore(cfg.Flash.TTL)
}
