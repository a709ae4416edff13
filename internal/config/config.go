package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	JWTSecret           string
	BcryptCost          int
	TokenTTL            time.Duration
	KitchenPollInterval time.Duration
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
	ClaimBatchSize      int
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultTokenTTL            = 24 * time.Hour
	defaultKitchenPollInterval = 3 * time.Second
	defaultWorkerPoolSize      = 4
	defaultShutdownTimeout     = 10 * time.Second
	defaultClaimBatchSize      = 16
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		BcryptCost:          getInt(lookup, "BCRYPT_COST", 0),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		KitchenPollInterval: getDuration(lookup, "KITCHEN_POLL_INTERVAL", defaultKitchenPollInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ClaimBatchSize:      getInt(lookup, "CLAIM_BATCH_SIZE", defaultClaimBatchSize),
	}

	fs := flag.NewFlagSet("breakfast", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.KitchenPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		tokenTTLStr        = cfg.TokenTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "Bcrypt cost for password hashing, 0 for library default")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent kitchen workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between kitchen intake polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.ClaimBatchSize, "claim-batch", cfg.ClaimBatchSize, "Maximum pending orders claimed per poll")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.KitchenPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ClaimBatchSize <= 0 {
		cfg.ClaimBatchSize = defaultClaimBatchSize
	}

	if cfg.KitchenPollInterval <= 0 {
		cfg.KitchenPollInterval = defaultKitchenPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
