package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting the server reads from the
// environment. A .env file in the working directory is loaded first so
// local development matches the deployed setup.
type Config struct {
	HTTPPort int    `env:"HTTP_PORT, default=8080"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	MongoURL      string `env:"MONGO_URL, default=mongodb://127.0.0.1:27017"`
	MongoDatabase string `env:"MONGO_DATABASE, default=game_server"`

	RedisURL string `env:"REDIS_URL, default=127.0.0.1:6379"`

	JWTSecretKey string `env:"JWT_SECRET_KEY"`

	BackofficeKey string `env:"BACKOFFICE_API_KEY"`
}

func Load(ctx context.Context) (*Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
