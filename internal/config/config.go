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
	RunAddress        string
	DatabaseURI       string
	BlobStoreAddress  string
	AdminToken        string
	LogLevel          string
	StageTimeout      time.Duration
	ShutdownTimeout   time.Duration
	ReaperInterval    time.Duration
	ReaperMinAge      time.Duration
	ReaperBatch       int
	ReaperWorkerCount int
}

const (
	defaultRunAddress      = ":8080"
	defaultLogLevel        = "info"
	defaultStageTimeout    = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultReaperInterval  = time.Minute
	defaultReaperMinAge    = 15 * time.Minute
	defaultReaperBatch     = 32
	defaultReaperWorkers   = 2
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		BlobStoreAddress:  getString(lookup, "BLOBSTORE_ADDRESS", ""),
		AdminToken:        getString(lookup, "ADMIN_TOKEN", ""),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		StageTimeout:      getDuration(lookup, "STAGE_TIMEOUT", defaultStageTimeout),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ReaperInterval:    getDuration(lookup, "REAPER_INTERVAL", defaultReaperInterval),
		ReaperMinAge:      getDuration(lookup, "REAPER_MIN_AGE", defaultReaperMinAge),
		ReaperBatch:       getInt(lookup, "REAPER_BATCH", defaultReaperBatch),
		ReaperWorkerCount: getInt(lookup, "REAPER_WORKERS", defaultReaperWorkers),
	}

	fs := flag.NewFlagSet("primedecor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		stageTimeoutStr    = cfg.StageTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		reaperIntervalStr  = cfg.ReaperInterval.String()
		reaperMinAgeStr    = cfg.ReaperMinAge.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BlobStoreAddress, "b", cfg.BlobStoreAddress, "Blob store base URL")
	fs.StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Pre-shared token for the admin API")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&stageTimeoutStr, "stage-timeout", stageTimeoutStr, "Timeout applied to each order workflow stage")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&reaperIntervalStr, "reaper-interval", reaperIntervalStr, "Interval between orphan order sweeps")
	fs.StringVar(&reaperMinAgeStr, "reaper-min-age", reaperMinAgeStr, "Minimum age before a pending order without items is reaped")
	fs.IntVar(&cfg.ReaperBatch, "reaper-batch", cfg.ReaperBatch, "Maximum orphans per sweep")
	fs.IntVar(&cfg.ReaperWorkerCount, "reaper-workers", cfg.ReaperWorkerCount, "Number of concurrent reaper workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StageTimeout, err = time.ParseDuration(stageTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid stage timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ReaperInterval, err = time.ParseDuration(reaperIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reaper interval: %w", err)
	}

	if cfg.ReaperMinAge, err = time.ParseDuration(reaperMinAgeStr); err != nil {
		return nil, fmt.Errorf("invalid reaper min age: %w", err)
	}

	if tokenFile, ok := lookup("ADMIN_TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read admin token file: %w", err)
		}
		cfg.AdminToken = string(content)
	}

	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = defaultStageTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ReaperInterval <= 0 {
		cfg.ReaperInterval = defaultReaperInterval
	}

	if cfg.ReaperMinAge <= 0 {
		cfg.ReaperMinAge = defaultReaperMinAge
	}

	if cfg.ReaperBatch <= 0 {
		cfg.ReaperBatch = defaultReaperBatch
	}

	if cfg.ReaperWorkerCount <= 0 {
		cfg.ReaperWorkerCount = defaultReaperWorkers
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.BlobStoreAddress == "" {
		return nil, fmt.Errorf("blob store address must be provided")
	}

	if cfg.AdminToken == "" {
		return nil, fmt.Errorf("admin token must be provided")
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
