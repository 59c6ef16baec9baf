package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	home := t.TempDir()
	setHomeEnv(t, home)
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Adapter != DefaultAdapter || cfg.Model != DefaultModel {
		t.Fatalf("expected defaults, got %s/%s", cfg.Adapter, cfg.Model)
	}
	if cfg.GoogleAPIKey != "" {
		t.Fatalf("expected no credential")
	}
}

func TestConfigEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	setHomeEnv(t, home)
	clearEnv(t)

	configDir := filepath.Join(home, ".ticketclass")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	data := []byte("api_keys:\n  google: file-google\nclassifier:\n  adapter: openai\n  model: file-model\n  max_attempts: 5\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("GOOGLE_API_KEY", "env-google")
	t.Setenv("TICKETCLASS_MODEL", "env-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GoogleAPIKey != "env-google" {
		t.Fatalf("expected env key to win, got %q", cfg.GoogleAPIKey)
	}
	if cfg.Model != "env-model" {
		t.Fatalf("expected env model to win, got %q", cfg.Model)
	}
	if cfg.Adapter != "openai" {
		t.Fatalf("expected file adapter, got %q", cfg.Adapter)
	}
	if cfg.MaxAttempts != 5 {
		t.Fatalf("expected file max_attempts, got %d", cfg.MaxAttempts)
	}
}

func TestHasAdapter(t *testing.T) {
	cfg := &Config{GoogleAPIKey: "key"}

	if !cfg.HasAdapter("google") {
		t.Fatalf("expected google credential to be recognized")
	}
	if cfg.HasAdapter("anthropic") || cfg.HasAdapter("openai") {
		t.Fatalf("expected missing credentials to be reported")
	}
	if !cfg.HasAdapter("mock") {
		t.Fatalf("mock adapter needs no credential")
	}
	if cfg.HasAdapter("deepseek") {
		t.Fatalf("unknown adapters must not be reported as configured")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GOOGLE_API_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "TICKETCLASS_ADAPTER", "TICKETCLASS_MODEL"} {
		t.Setenv(key, "")
	}
}

func setHomeEnv(t *testing.T, home string) {
	t.Helper()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
}
