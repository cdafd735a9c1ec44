package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/config"
)

func TestNewConfig_ConvertsUnits(t *testing.T) {
	conf := &config.Config{
		Database: config.DatabaseConfig{
			Driver:             DriverPostgres,
			Host:               "db",
			Port:               5432,
			Username:           "ledger",
			Password:           "secret",
			Database:           "ledger",
			SSLMode:            "disable",
			IsolationLevel:     IsolationSerializable,
			MaxOpenConns:       20,
			ConnMaxLifetimeMin: 30,
			QueryTimeoutSec:    5,
			SlowQueryMs:        250,
			RetryAttempts:      3,
			RetryDelaySec:      2,
			TxRetries:          4,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	dbConf := NewConfig(conf)

	require.NoError(t, dbConf.Validate())
	assert.Equal(t, 30*time.Minute, dbConf.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, 250*time.Millisecond, dbConf.SlowQueryThreshold)
	assert.Equal(t, 2*time.Second, dbConf.RetryDelay)
	assert.Equal(t, "warn", dbConf.LogLevel)
	assert.Equal(t, "host=db port=5432 user=ledger password=secret dbname=ledger sslmode=disable", dbConf.DSN())
	assert.NotContains(t, dbConf.Redacted(), "secret")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Driver:         DriverSQLite,
			SQLitePath:     "ledger.db",
			IsolationLevel: IsolationReadCommitted,
			MaxOpenConns:   1,
			RetryAttempts:  1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid sqlite", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: "unsupported database driver"},
		{name: "postgres without host", mutate: func(c *Config) { c.Driver = DriverPostgres }, wantErr: "host is required"},
		{name: "sqlite without path", mutate: func(c *Config) { c.SQLitePath = "" }, wantErr: "sqlite path is required"},
		{name: "bad isolation", mutate: func(c *Config) { c.IsolationLevel = "repeatable_read" }, wantErr: "isolation level"},
		{name: "no connections", mutate: func(c *Config) { c.MaxOpenConns = 0 }, wantErr: "max open connections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))

	dsn := sqliteDSN("/var/lib/ledger/ledger.db")
	assert.Contains(t, dsn, "/var/lib/ledger/ledger.db?")
	assert.Contains(t, dsn, "busy_timeout")
	assert.Contains(t, dsn, "journal_mode")
}
