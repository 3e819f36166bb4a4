package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
	StorageRedis  = "redis"

	// DevJWTSecret is the signing key used when JWT_SECRET is unset. It is
	// refused when ENV=production.
	DevJWTSecret = "campulse-dev-secret"

	minProductionSecretLen = 32
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	JWTSecret       string        `env:"JWT_SECRET,       default=campulse-dev-secret"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	MockLatency     time.Duration `env:"MOCK_LATENCY,     default=0s"`
	Storage         string        `env:"STORAGE,          default=memory"`
	SessionStore    string        `env:"SESSION_STORE,    default=memory"`
	BookmarkStore   string        `env:"BOOKMARK_STORE,   default=memory"`
	DispatchWorkers int           `env:"DISPATCH_WORKERS, default=4"`
	SeedData        bool          `env:"SEED_DATA,        default=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campulse"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Process(context.Background(), envconfig.OsLookuper())
}

// Process builds a Config from lookuper and validates the backend selections.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// NeedsMongo reports whether any backend selection points at MongoDB.
func (c *Config) NeedsMongo() bool {
	return c.Storage == StorageMongo || c.SessionStore == StorageMongo
}

// NeedsRedis reports whether any backend selection points at Redis.
func (c *Config) NeedsRedis() bool {
	return c.SessionStore == StorageRedis || c.BookmarkStore == StorageRedis
}

func (c *Config) validate() error {
	if err := oneOf("STORAGE", c.Storage, StorageMemory, StorageMongo); err != nil {
		return err
	}
	if err := oneOf("SESSION_STORE", c.SessionStore, StorageMemory, StorageRedis, StorageMongo); err != nil {
		return err
	}
	if err := oneOf("BOOKMARK_STORE", c.BookmarkStore, StorageMemory, StorageRedis); err != nil {
		return err
	}
	if c.MockLatency < 0 {
		return fmt.Errorf("config: MOCK_LATENCY must not be negative")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	if c.IsProduction() {
		if c.JWTSecret == DevJWTSecret {
			return fmt.Errorf("config: JWT_SECRET must be set in production")
		}
		if len(c.JWTSecret) < minProductionSecretLen {
			return fmt.Errorf("config: JWT_SECRET must be at least %d bytes in production", minProductionSecretLen)
		}
	}
	return nil
}

func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("config: %s=%q, want one of %v", name, value, allowed)
}
