package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.HTTPPort)
	require.Equal(t, 50051, cfg.GRPCPort)
	require.Equal(t, "info", cfg.LogLevel.String())
	require.Equal(t, 1024, cfg.OrderQueueSize)
	require.Equal(t, 1024, cfg.EventBufferSize)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("GRPC_PORT", "9095")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ORDER_QUEUE_SIZE", "16")
	t.Setenv("EVENT_BUFFER_SIZE", "8")

	cfg, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, 9095, cfg.GRPCPort)
	require.Equal(t, "debug", cfg.LogLevel.String())
	require.Equal(t, 16, cfg.OrderQueueSize)
	require.Equal(t, 8, cfg.EventBufferSize)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "shouting")
	_, err := loadConfig()
	require.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("ORDER_QUEUE_SIZE", "0")
	_, err = loadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ORDER_QUEUE_SIZE")
}
