package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const minJWTSecretLen = 32

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	BaseURL  string `env:"BASE_URL, default=http://localhost:8080"`

	// JWTSecret has no default on purpose. The process refuses to start
	// without an explicit secret of at least minJWTSecretLen bytes.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL, default=30m"`

	// BcryptCost zero means bcrypt.DefaultCost; MaxConcurrentHashes bounds
	// the password-hashing worker pool.
	BcryptCost          int `env:"BCRYPT_COST, default=0"`
	MaxConcurrentHashes int `env:"MAX_CONCURRENT_HASHES, default=4"`

	// AdminPassword likewise has no default: the bootstrap credential must
	// be supplied explicitly and rotated after first deployment.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@itsyourradio.com"`
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminFullName string `env:"ADMIN_FULL_NAME, default=IYR Admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=itsyourradio"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,   default=0"`
	FeedTTL  time.Duration `env:"FEED_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates it. Secrets are never defaulted; a bad configuration fails the
// process before any listener starts.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	if c.AdminPassword == "" {
		return errors.New("config: ADMIN_PASSWORD is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}
