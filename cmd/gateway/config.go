package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the gateway, loaded from the
// environment and config.yaml.
type AppConfig struct {
	Port        string
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// UpstreamConfig describes the weather data provider.
type UpstreamConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Accept    string `yaml:"accept"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout converts the configured timeout to a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutMS) * time.Millisecond
}

// DiagnosticsConfig bounds the shared log history.
type DiagnosticsConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

// LoadConfig loads configuration from a .env file, environment variables,
// and config.yaml. In release mode (GIN_MODE=release) the .env file is
// skipped and configuration comes from the environment directly.
func LoadConfig() (*AppConfig, error) {
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{Port: os.Getenv("PORT")}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	return cfg, nil
}
