// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	TokenSecret     string
	TokenTTL        time.Duration
	CatalogPath     string
	RequestTimeout  time.Duration
	NavigationScope string
}

const (
	defaultPort           = 3318
	defaultTokenTTL       = 30 * 24 * time.Hour
	defaultRequestTimeout = 5 * time.Second
)

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var tokenTTL, requestTimeout string

	fs := flag.NewFlagSet("satisfaction-polygon", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Bearer token signing secret (prefer env)")
	fs.StringVar(&tokenTTL, "token-ttl", "", "Lifetime of issued tokens")

	// Behaviour
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Element catalog YAML file (default: built-in)")
	fs.StringVar(&requestTimeout, "timeout", "", "Per-request storage deadline")
	fs.StringVar(&cfg.NavigationScope, "nav-scope", "", "Polygon navigation scope (global or user)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	var err error
	if cfg.TokenTTL, err = durationSetting(tokenTTL, "TOKEN_TTL", defaultTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationSetting(requestTimeout, "REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return Config{}, err
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.NavigationScope == "" {
		cfg.NavigationScope = os.Getenv("NAVIGATION_SCOPE")
		if cfg.NavigationScope == "" {
			cfg.NavigationScope = "global"
		}
	}
	if cfg.NavigationScope != "global" && cfg.NavigationScope != "user" {
		return Config{}, fmt.Errorf("unsupported navigation scope %q", cfg.NavigationScope)
	}

	return cfg, nil
}

// durationSetting resolves flag, then env, then fallback. Result must be positive.
func durationSetting(flagValue, envName string, fallback time.Duration) (time.Duration, error) {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv(envName)
	}
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", envName, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", envName)
	}
	return d, nil
}
