// Package config loads process configuration: provider credentials and the
// classifier selection. Environment variables take precedence over
// ~/.ticketclass/config.yaml. Configuration faults are startup-time
// failures, never per-classification ones.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for the classifier selection, matching the primary Gemini
// gateway.
const (
	DefaultAdapter = "google"
	DefaultModel   = "gemini-2.0-flash"
)

// Config holds the application configuration.
type Config struct {
	GoogleAPIKey    string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	Adapter         string
	Model           string
	MaxAttempts     int
	ConfigDir       string
}

// FileConfig represents the structure of ~/.ticketclass/config.yaml
type FileConfig struct {
	APIKeys    APIKeysConfig    `yaml:"api_keys"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// APIKeysConfig holds API key configuration from file.
type APIKeysConfig struct {
	Google    string `yaml:"google"`
	Anthropic string `yaml:"anthropic"`
	OpenAI    string `yaml:"openai"`
}

// ClassifierConfig holds classifier selection from file.
type ClassifierConfig struct {
	Adapter     string `yaml:"adapter"`
	Model       string `yaml:"model"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// Load reads configuration from the config file and environment variables.
// Environment variables take precedence over file configuration.
func Load() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	fileConfig := loadFileConfig(filepath.Join(configDir, "config.yaml"))

	cfg := &Config{
		GoogleAPIKey:    getEnvOrDefault("GOOGLE_API_KEY", fileConfig.APIKeys.Google),
		AnthropicAPIKey: getEnvOrDefault("ANTHROPIC_API_KEY", fileConfig.APIKeys.Anthropic),
		OpenAIAPIKey:    getEnvOrDefault("OPENAI_API_KEY", fileConfig.APIKeys.OpenAI),
		Adapter:         getEnvOrDefault("TICKETCLASS_ADAPTER", fileConfig.Classifier.Adapter),
		Model:           getEnvOrDefault("TICKETCLASS_MODEL", fileConfig.Classifier.Model),
		MaxAttempts:     fileConfig.Classifier.MaxAttempts,
		ConfigDir:       configDir,
	}

	if cfg.Adapter == "" {
		cfg.Adapter = DefaultAdapter
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	return cfg, nil
}

// HasAdapter returns true if the API key for the given adapter is
// configured. The mock adapter needs no credential.
func (c *Config) HasAdapter(name string) bool {
	switch name {
	case "google":
		return c.GoogleAPIKey != ""
	case "anthropic":
		return c.AnthropicAPIKey != ""
	case "openai":
		return c.OpenAIAPIKey != ""
	case "mock":
		return true
	default:
		return false
	}
}

// loadFileConfig reads the config file, returning empty config if not found.
func loadFileConfig(path string) *FileConfig {
	cfg := &FileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg // Return empty config if file doesn't exist
	}

	_ = yaml.Unmarshal(data, cfg) // Ignore parse errors, use defaults
	return cfg
}

// getEnvOrDefault returns the environment variable value if set,
// otherwise returns the default value.
func getEnvOrDefault(envVar, defaultValue string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultValue
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".ticketclass")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
