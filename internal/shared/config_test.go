package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if !config.Output.Extended {
			t.Error("expected extended output by default")
		}
		if config.Output.AbsolutePaths {
			t.Error("expected relative paths by default")
		}
		if config.Output.Timestamps {
			t.Error("expected timestamp fragments off by default")
		}
		if config.Batch.Workers != 4 {
			t.Errorf("expected 4 workers, got %d", config.Batch.Workers)
		}
		if config.Batch.RateLimit != 0 {
			t.Errorf("expected no rate limit, got %v", config.Batch.RateLimit)
		}
		if config.Log.Level != "info" {
			t.Errorf("expected info log level, got %s", config.Log.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Batch.Workers != defaultConfig.Batch.Workers {
			t.Errorf("created config workers don't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[output]
extended = false
absolute_paths = true
timestamps = true

[output.substitutions]
wav = "flac"
ape = "flac"

[batch]
workers = 2
rate_limit = 5.0

[log]
level = "debug"
file = "/tmp/cuem3u.log"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Output.Extended {
			t.Error("expected extended = false")
		}
		if !config.Output.AbsolutePaths || !config.Output.Timestamps {
			t.Errorf("path options not loaded: %+v", config.Output)
		}
		if config.Output.Substitutions["wav"] != "flac" || config.Output.Substitutions["ape"] != "flac" {
			t.Errorf("substitutions not loaded: %v", config.Output.Substitutions)
		}
		if config.Batch.Workers != 2 || config.Batch.RateLimit != 5.0 {
			t.Errorf("batch settings not loaded: %+v", config.Batch)
		}
		if config.Log.Level != "debug" {
			t.Errorf("log level = %s, want debug", config.Log.Level)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
