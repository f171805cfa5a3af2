package database

import (
	"errors"
	"fmt"
	"time"
)

// Config represents the SQLite store configuration. The store is a local
// file (or :memory: in tests); there is no networked backend.
type Config struct {
	Path         string        `mapstructure:"db_path"`
	BusyTimeout  time.Duration `mapstructure:"db_busy_timeout"`
	QueryTimeout time.Duration `mapstructure:"db_query_timeout"`
	LogLevel     string        `mapstructure:"db_log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Path:         "commupay.db",
		BusyTimeout:  5 * time.Second,
		QueryTimeout: 10 * time.Second,
		LogLevel:     "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("database path is required")
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("busy timeout must be non-negative, got: %s", c.BusyTimeout)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the database connection string. The busy timeout pragma
// keeps concurrent readers from failing immediately while another
// connection holds the write lock.
func (c *Config) DSN() string {
	if c.BusyTimeout > 0 {
		return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", c.Path, c.BusyTimeout.Milliseconds())
	}
	return c.Path
}
