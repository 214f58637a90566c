package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "farm-events", cfg.KafkaTopic)
	assert.Equal(t, 7*24*3600, cfg.SessionTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite://farm.db")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SESSION_TIMEOUT", "600")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite://farm.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 600, cfg.SessionTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadRejectsNonPositiveSessionTimeout(t *testing.T) {
	t.Setenv("SESSION_TIMEOUT", "0")

	_, err := Load()
	assert.Error(t, err)
}
