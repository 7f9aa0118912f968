package main

import (
	"fmt"

	dslog "github.com/grafana/dskit/log"
	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment.
type Config struct {
	HTTPPort        int
	GRPCPort        int
	LogLevel        dslog.Level
	OrderQueueSize  int
	EventBufferSize int
}

// loadConfig builds the runtime configuration from environment variables,
// falling back to defaults for anything unset.
func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("http_port", 3000)
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("log_level", "info")
	v.SetDefault("order_queue_size", 1024)
	v.SetDefault("event_buffer_size", 1024)
	v.AutomaticEnv()

	cfg := &Config{
		HTTPPort:        v.GetInt("http_port"),
		GRPCPort:        v.GetInt("grpc_port"),
		OrderQueueSize:  v.GetInt("order_queue_size"),
		EventBufferSize: v.GetInt("event_buffer_size"),
	}
	if err := cfg.LogLevel.Set(v.GetString("log_level")); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("GRPC_PORT out of range: %d", c.GRPCPort)
	}
	if c.OrderQueueSize <= 0 {
		return fmt.Errorf("ORDER_QUEUE_SIZE must be > 0, got %d", c.OrderQueueSize)
	}
	if c.EventBufferSize <= 0 {
		return fmt.Errorf("EVENT_BUFFER_SIZE must be > 0, got %d", c.EventBufferSize)
	}
	return nil
}
