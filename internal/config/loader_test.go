package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FUTBOLQUIZ_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PoolSize != 120 {
		t.Fatalf("PoolSize = %d, want 120", cfg.PoolSize)
	}
	if cfg.BingoCountdown != 60 || cfg.TriviaCountdown != 120 {
		t.Fatalf("countdowns = %d/%d, want 60/120", cfg.BingoCountdown, cfg.TriviaCountdown)
	}
	if len(cfg.Leagues["premier"]) != 20 {
		t.Fatalf("premier teams = %d, want 20", len(cfg.Leagues["premier"]))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FUTBOLQUIZ_CONFIG", "")
	t.Setenv("FUTBOLQUIZ_POOL_SIZE", "48")
	t.Setenv("FUTBOLQUIZ_DATA_BASE_URL", "https://quiz.example.com/api/get")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PoolSize != 48 {
		t.Fatalf("PoolSize = %d, want 48", cfg.PoolSize)
	}
	if cfg.DataBaseURL != "https://quiz.example.com/api/get" {
		t.Fatalf("DataBaseURL = %q", cfg.DataBaseURL)
	}
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "pool_size: 60\nquestion_count: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FUTBOLQUIZ_CONFIG", path)
	t.Setenv("FUTBOLQUIZ_POOL_SIZE", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QuestionCount != 5 {
		t.Fatalf("QuestionCount = %d, want 5 from file", cfg.QuestionCount)
	}
	if cfg.PoolSize != 90 {
		t.Fatalf("PoolSize = %d, env should override file", cfg.PoolSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FUTBOLQUIZ_CONFIG", "")
	t.Setenv("FUTBOLQUIZ_POOL_SIZE", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative pool_size")
	}
}
