// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, server) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for the script writer API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the document store backend.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"surrealdb"`

	// Document Database (SurrealDB)
	SurrealURL       string `env:"SURREALDB_URL"       envDefault:"ws://localhost:8000"`
	SurrealNamespace string `env:"SURREALDB_NAMESPACE" envDefault:"scriptwriter"`
	SurrealDatabase  string `env:"SURREALDB_DATABASE"  envDefault:"scriptwriter"`
	SurrealUser      string `env:"SURREALDB_USER"`
	SurrealPassword  string `env:"SURREALDB_PASSWORD"`

	// Relational Database (PostgreSQL, JSONB documents)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool `env:"MIGRATION_AUTO" envDefault:"true"`

	// Key-Value Store (Redis)
	RedisURL string `env:"REDIS_URL"`

	// Messaging (NATS JetStream key-value buckets)
	NATSURL          string `env:"NATS_URL"`
	NATSBucketPrefix string `env:"NATS_BUCKET_PREFIX" envDefault:"scriptwriter"`

	// Collection names, one per entity type.
	Collections Collections `envPrefix:"COLLECTION_"`

	// Per-IP rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// Collections names the document collection backing each entity type.
type Collections struct {
	Comic    string `env:"COMIC"    envDefault:"comic"`
	Issue    string `env:"ISSUE"    envDefault:"issue"`
	Page     string `env:"PAGE"     envDefault:"page"`
	Panel    string `env:"PANEL"    envDefault:"panel"`
	Dialogue string `env:"DIALOGUE" envDefault:"dialogue"`
	Actor    string `env:"ACTOR"    envDefault:"actor"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected store driver has its connection settings
// and that every collection name is usable by all backends.
func (c *Config) Validate() error {
	validator := &validate.Validator{}

	validator.OneOf("STORE_DRIVER", c.StoreDriver,
		constants.DriverSurrealDB,
		constants.DriverPostgres,
		constants.DriverRedis,
		constants.DriverNATS,
		constants.DriverMemory,
	)

	switch c.StoreDriver {
	case constants.DriverSurrealDB:
		validator.Required("SURREALDB_URL", c.SurrealURL)
		validator.Required("SURREALDB_NAMESPACE", c.SurrealNamespace)
		validator.Required("SURREALDB_DATABASE", c.SurrealDatabase)
	case constants.DriverPostgres:
		validator.Required("DATABASE_URL", c.DatabaseURL)
	case constants.DriverRedis:
		validator.Required("REDIS_URL", c.RedisURL)
	case constants.DriverNATS:
		validator.Required("NATS_URL", c.NATSURL)
	}

	validator.Custom("STORE_DRIVER", c.IsProduction() && c.StoreDriver == constants.DriverMemory,
		"The memory driver is not allowed in production")

	// Collection names become table, hash key and bucket names
	validator.
		Identifier("COLLECTION_COMIC", c.Collections.Comic).
		Identifier("COLLECTION_ISSUE", c.Collections.Issue).
		Identifier("COLLECTION_PAGE", c.Collections.Page).
		Identifier("COLLECTION_PANEL", c.Collections.Panel).
		Identifier("COLLECTION_DIALOGUE", c.Collections.Dialogue).
		Identifier("COLLECTION_ACTOR", c.Collections.Actor)

	validator.Custom("RATE_LIMIT_RPS", c.RateLimitRPS <= 0, "Must be positive")
	validator.Custom("RATE_LIMIT_BURST", c.RateLimitBurst <= 0, "Must be positive")

	return validator.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins accepted outside development.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}
