package config

import "time"

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// FlashBackend selects where one-shot notifications are kept between redirects.
type FlashBackend string

const (
	// FlashBackendMemory keeps notifications in process memory (single replica).
	FlashBackendMemory FlashBackend = "memory"
	// FlashBackendRedis keeps notifications in Redis (shared across replicas).
	FlashBackendRedis FlashBackend = "redis"
)

// FlashConfig controls the post/redirect/get notification store.
type FlashConfig struct {
	Backend FlashBackend  `env:"BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"TTL"     envDefault:"2m"`
	Prefix  string        `env:"PREFIX"  envDefault:"sustainastock:flash:"`
}

// Sanitize restores defaults for unknown backends and non-positive TTLs.
func (c *FlashConfig) Sanitize() {
	switch c.Backend {
	case FlashBackendMemory, FlashBackendRedis:
	default:
		c.Backend = FlashBackendMemory
	}
	if c.TTL <= 0 {
		c.TTL = 2 * time.Minute
	}
	if c.Prefix == "" {
		c.Prefix = "sustainastock:flash:"
	}
}

// UsesRedis reports whether the flash store needs a Redis connection.
func (c *FlashConfig) UsesRedis() bool {
	return c.Backend == FlashBackendRedis
}
