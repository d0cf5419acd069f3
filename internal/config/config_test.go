package config

import (
	"log/slog"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"MEALPLANNER_DB_PATH", "MEALPLANNER_DOCUMENT_KEY", "LOG_LEVEL", "LOG_FORMAT", "MEALPLANNER_METRICS_FILE"} {
			setEnv(key, "")
		}

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "./data/mealplanner.db" {
			t.Errorf("Expected default DBPath, got '%s'", cfg.DBPath)
		}
		if cfg.DocumentKey != "family-meal-planner-data" {
			t.Errorf("Expected default DocumentKey, got '%s'", cfg.DocumentKey)
		}
		if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
			t.Errorf("Expected info/text logging, got %v/%s", cfg.LogLevel, cfg.LogFormat)
		}
		if cfg.MetricsFile != "" {
			t.Errorf("Expected no metrics file, got '%s'", cfg.MetricsFile)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		setEnv("MEALPLANNER_DB_PATH", "/tmp/plans.db")
		setEnv("MEALPLANNER_DOCUMENT_KEY", "test-key")
		setEnv("LOG_LEVEL", "DEBUG")
		setEnv("LOG_FORMAT", "json")
		setEnv("MEALPLANNER_METRICS_FILE", "/tmp/mealplanner.prom")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "/tmp/plans.db" || cfg.DocumentKey != "test-key" {
			t.Errorf("Unexpected storage config: %+v", cfg)
		}
		if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
			t.Errorf("Expected debug/json logging, got %v/%s", cfg.LogLevel, cfg.LogFormat)
		}
		if cfg.MetricsFile != "/tmp/mealplanner.prom" {
			t.Errorf("Unexpected metrics file '%s'", cfg.MetricsFile)
		}
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		setEnv("LOG_LEVEL", "verbose")
		setEnv("LOG_FORMAT", "")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for invalid LOG_LEVEL, got nil")
		}
	})

	t.Run("InvalidLogFormat", func(t *testing.T) {
		setEnv("LOG_LEVEL", "")
		setEnv("LOG_FORMAT", "xml")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid LOG_FORMAT, got nil")
		}
		expectedError := `LOG_FORMAT must be text or json, got "xml"`
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})
}
