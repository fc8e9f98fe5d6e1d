package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the tunables that ship with the deployment rather than the
// environment: display timing and stream naming shared with the gateway.
type Config struct {
	Console struct {
		DebounceMs int `yaml:"debounce_ms"`
		MaxRetries int `yaml:"max_retries"`
		BackoffMs  int `yaml:"backoff_ms"`
	} `yaml:"console"`

	Overlay struct {
		CarouselIntervalSeconds int    `yaml:"carousel_interval_seconds"`
		StreamName              string `yaml:"stream_name"`
		SubjectPrefix           string `yaml:"subject_prefix"`
	} `yaml:"overlay"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Console.DebounceMs <= 0 {
		config.Console.DebounceMs = 500
	}
	if config.Console.MaxRetries <= 0 {
		config.Console.MaxRetries = 3
	}
	if config.Console.BackoffMs <= 0 {
		config.Console.BackoffMs = 250
	}
	if config.Overlay.CarouselIntervalSeconds <= 0 {
		config.Overlay.CarouselIntervalSeconds = 8
	}
	if config.Overlay.StreamName == "" {
		config.Overlay.StreamName = "MATCH_EVENTS"
	}
	if config.Overlay.SubjectPrefix == "" {
		config.Overlay.SubjectPrefix = "match.events"
	}

	return &config, nil
}
