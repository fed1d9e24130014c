// Package config provides centralized configuration management.
// This is the single source of truth for simulation and server
// settings; other packages reference these values rather than reading
// the environment themselves.
package config

import (
	"os"
	"strconv"
)

// SimConfig holds simulation loop settings.
type SimConfig struct {
	TickRate     int    // Simulation ticks per second
	Seed         int64  // RNG seed; 0 means time-based
	EventLogPath string // JSONL event log path; empty disables persistence
	Difficulty   string // Default difficulty preset name
}

// DefaultSim returns the default simulation configuration.
func DefaultSim() SimConfig {
	return SimConfig{
		TickRate:     60,
		Seed:         0,
		EventLogPath: "events.jsonl",
		Difficulty:   "medium",
	}
}

// SimFromEnv returns simulation configuration with environment variable
// overrides. Environment variables take precedence over defaults.
func SimFromEnv() SimConfig {
	cfg := DefaultSim()

	if tps := getEnvInt("SIM_TICK_RATE", 0); tps > 0 {
		cfg.TickRate = tps
	}
	if seed := getEnvInt64("SIM_SEED", 0); seed != 0 {
		cfg.Seed = seed
	}
	if path, ok := os.LookupEnv("EVENT_LOG_PATH"); ok {
		cfg.EventLogPath = path
	}
	if d := os.Getenv("SIM_DIFFICULTY"); d != "" {
		cfg.Difficulty = d
	}

	return cfg
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port: 3000,
	}
}

// ServerFromEnv returns server configuration with environment variable
// overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}

	return cfg
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Sim    SimConfig
	Server ServerConfig
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	return AppConfig{
		Sim:    SimFromEnv(),
		Server: ServerFromEnv(),
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}
