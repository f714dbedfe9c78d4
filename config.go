package main

import (
	"os"
	"strings"
)

// Config holds runtime settings, sourced from the environment with
// development defaults.
type Config struct {
	Port          string
	Database      string
	SessionSecret string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Port:          ":3000",
		Database:      "chat.db",
		SessionSecret: "dev-secret-change-me",
	}
}

// NewConfigFromEnv builds a Config from PORT, DATABASE and SESSION_SECRET,
// falling back to defaults for anything unset.
func NewConfigFromEnv() *Config {
	cfg := NewConfig()

	if port := os.Getenv("PORT"); port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Port = port
	}

	if database := os.Getenv("DATABASE"); database != "" {
		cfg.Database = database
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = secret
	}

	return cfg
}
