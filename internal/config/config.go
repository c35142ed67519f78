// Package config loads environment configuration and sets up logging
// for the mifugo terminal.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultReplyDelay mimics SMS network latency in the simulator.
const defaultReplyDelay = 600 * time.Millisecond

// Config holds all configuration values.
type Config struct {
	// Seed data
	DataFile string // optional YAML seed file; empty means built-in demo data

	// Simulator
	ReplyDelay time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		DataFile: getEnv("MIFUGO_DATA_FILE", ""),

		ReplyDelay: parseMillis(getEnv("MIFUGO_REPLY_DELAY_MS", ""), defaultReplyDelay),

		LogFile:  getEnv("MIFUGO_LOG_FILE", "/tmp/mifugo.log"),
		LogLevel: parseLogLevel(getEnv("MIFUGO_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseMillis(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	ms, err := strconv.Atoi(s)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
