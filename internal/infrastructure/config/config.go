package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig
}

// UpstreamConfig locates the two external services. The defaults match the
// services' own development ports.
type UpstreamConfig struct {
	ProductAPIURL string        `env:"PRODUCT_API_URL,  default=http://localhost:5002"`
	UserAPIURL    string        `env:"USER_API_URL,     default=http://localhost:5001"`
	Timeout       time.Duration `env:"UPSTREAM_TIMEOUT, default=10s"`
}

// SessionConfig controls the signed session cookie and token persistence.
type SessionConfig struct {
	// Secret signs the session cookie. Required outside development.
	Secret     string        `env:"SESSION_SECRET"`
	CookieName string        `env:"SESSION_COOKIE, default=storefront_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=1h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
