package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings of the engine binary. Everything has a
// default; a .env file or the process environment overrides it.
type Config struct {
	// Workers is the worker count for parallel mode. A negative value means
	// "pick automatically".
	Workers int
	// ChannelCapacity bounds the pipeline channels in parallel mode.
	ChannelCapacity int
	LogLevel        string
	LogFormat       string
}

// Load reads the configuration from the environment, after sourcing an
// optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Workers:         getEnvInt("WORKERS", -1),
		ChannelCapacity: getEnvInt("CHANNEL_CAPACITY", 256),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
