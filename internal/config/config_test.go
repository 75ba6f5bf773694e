package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, -1, cfg.Workers)
	assert.Equal(t, 256, cfg.ChannelCapacity)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKERS", "4")
	t.Setenv("CHANNEL_CAPACITY", "32")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 32, cfg.ChannelCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadIgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("CHANNEL_CAPACITY", "many")
	cfg := Load()
	assert.Equal(t, 256, cfg.ChannelCapacity)
}
