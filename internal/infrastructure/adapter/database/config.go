package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported isolation levels for ledger transactions
const (
	IsolationReadCommitted = "read_committed"
	IsolationSerializable  = "serializable"
)

// Config represents database configuration
type Config struct {
	Driver             string
	Host               string
	Port               int
	Username           string
	Password           string
	Database           string
	SSLMode            string
	SQLitePath         string
	IsolationLevel     string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	SlowQueryThreshold time.Duration
	LogLevel           string
	RetryAttempts      int
	RetryDelay         time.Duration
	TxRetries          int
}

// NewConfig adapts the application configuration to database configuration
func NewConfig(conf *config.Config) *Config {
	db := conf.Database
	return &Config{
		Driver:             db.Driver,
		Host:               db.Host,
		Port:               db.Port,
		Username:           db.Username,
		Password:           db.Password,
		Database:           db.Database,
		SSLMode:            db.SSLMode,
		SQLitePath:         db.SQLitePath,
		IsolationLevel:     db.IsolationLevel,
		MaxOpenConns:       db.MaxOpenConns,
		MaxIdleConns:       db.MaxIdleConns,
		ConnMaxLifetime:    time.Duration(db.ConnMaxLifetimeMin) * time.Minute,
		ConnMaxIdleTime:    time.Duration(db.ConnMaxIdleTimeMin) * time.Minute,
		QueryTimeout:       time.Duration(db.QueryTimeoutSec) * time.Second,
		SlowQueryThreshold: time.Duration(db.SlowQueryMs) * time.Millisecond,
		LogLevel:           conf.Logger.Level,
		RetryAttempts:      db.RetryAttempts,
		RetryDelay:         time.Duration(db.RetryDelaySec) * time.Second,
		TxRetries:          db.TxRetries,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.IsolationLevel != IsolationReadCommitted && c.IsolationLevel != IsolationSerializable {
		return fmt.Errorf("unsupported isolation level: %s", c.IsolationLevel)
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.RetryAttempts <= 0 {
		return fmt.Errorf("retry attempts must be positive, got: %d", c.RetryAttempts)
	}
	if c.TxRetries < 0 {
		return fmt.Errorf("transaction retries must be non-negative, got: %d", c.TxRetries)
	}
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return sqliteDSN(c.SQLitePath)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// Redacted returns the DSN with the password masked, for logs
func (c *Config) Redacted() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Database, c.SSLMode)
}

// sqliteDSN adds the pragmas the ledger relies on to a sqlite file path.
// A busy timeout lets a second process wait for the write lock instead of failing at once.
func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		return path
	}

	pragmas := url.Values{}
	pragmas.Add("_pragma", "busy_timeout(5000)")
	pragmas.Add("_pragma", "journal_mode(WAL)")

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + pragmas.Encode()
}
