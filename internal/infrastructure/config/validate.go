package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	validDrivers    = []string{"postgres", "sqlite"}
	validIsolations = []string{"read_committed", "serializable"}
	validBackends   = []string{"none", "database", "redis"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Validate reports every missing or invalid setting at once
func (c *Config) Validate() error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		add("server.port: invalid port %d", c.Server.Port)
	}

	db := c.Database
	if !slices.Contains(validDrivers, db.Driver) {
		add("database.driver: unsupported driver %q", db.Driver)
	}
	if db.Driver == "postgres" {
		if db.Host == "" {
			add("database.host: required for postgres")
		}
		if db.Username == "" {
			add("database.username: required for postgres")
		}
		if db.Database == "" {
			add("database.database: required for postgres")
		}
	}
	if db.Driver == "sqlite" && db.SQLitePath == "" {
		add("database.sqlitePath: required for sqlite")
	}
	if !slices.Contains(validIsolations, db.IsolationLevel) {
		add("database.isolationLevel: must be one of %v", validIsolations)
	}
	if db.MaxOpenConns <= 0 {
		add("database.maxOpenConns: must be positive")
	}

	if !slices.Contains(validLogLevels, c.Logger.Level) {
		add("logger.level: must be one of %v", validLogLevels)
	}
	if !slices.Contains(validLogFormats, c.Logger.Format) {
		add("logger.format: must be one of %v", validLogFormats)
	}

	if c.Ledger.DefaultLowBalanceThreshold < 0 {
		add("ledger.defaultLowBalanceThreshold: must be non-negative")
	}
	if c.Ledger.DefaultListLimit <= 0 || c.Ledger.MaxListLimit < c.Ledger.DefaultListLimit {
		add("ledger.defaultListLimit/maxListLimit: need 0 < default <= max")
	}

	if c.Auth.JWTSecret == "" {
		add("auth.jwtSecret: required (LEDGER_AUTH_JWT_SECRET)")
	}

	if !slices.Contains(validBackends, c.Lock.Backend) {
		add("lock.backend: must be one of %v", validBackends)
	}
	if c.Lock.Backend == "redis" && c.Redis.Addr == "" {
		add("redis.addr: required when lock.backend is redis")
	}

	if c.Events.Enabled {
		if len(c.Events.Brokers) == 0 {
			add("events.brokers: required when events are enabled")
		}
		if c.Events.Topic == "" {
			add("events.topic: required when events are enabled")
		}
	}

	return errors.Join(problems...)
}

// SecurityWarnings lists settings that are tolerated but unsafe in production
func (c *Config) SecurityWarnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	if len(c.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret is shorter than 32 bytes")
	}
	if c.Database.Driver == "postgres" && c.Database.SSLMode == "disable" {
		warnings = append(warnings, "database.sslMode is disabled")
	}
	if c.Database.Driver == "sqlite" {
		warnings = append(warnings, "sqlite is not meant for multi-instance production deployments")
	}
	if slices.Contains(c.Server.CORSAllowedOrigins, "*") {
		warnings = append(warnings, "server.corsAllowedOrigins allows every origin")
	}
	return warnings
}
