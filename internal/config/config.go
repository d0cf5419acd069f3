// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultDBPath      = "./data/mealplanner.db"
	defaultDocumentKey = "family-meal-planner-data"
)

// Config holds the configuration for the application.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string
	// DocumentKey selects the stored document row.
	DocumentKey string

	LogLevel  slog.Level
	LogFormat string // "text" or "json"

	// MetricsFile, when set, receives a Prometheus textfile dump on exit.
	MetricsFile string
}

// NewFromEnv creates a new Config object from environment variables.
// Every setting has a default; only malformed values are errors.
func NewFromEnv() (*Config, error) {
	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
	}

	return &Config{
		DBPath:      getEnv("MEALPLANNER_DB_PATH", defaultDBPath),
		DocumentKey: getEnv("MEALPLANNER_DOCUMENT_KEY", defaultDocumentKey),
		LogLevel:    level,
		LogFormat:   format,
		MetricsFile: os.Getenv("MEALPLANNER_METRICS_FILE"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", s)
}
