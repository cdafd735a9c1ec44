package config

import "time"

// Config holds all configuration for the ledger service
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Lock        LockConfig     `mapstructure:"lock"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Events      EventsConfig   `mapstructure:"events"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                 string   `mapstructure:"host"`
	Port                 int      `mapstructure:"port"`
	ReadTimeoutSec       int      `mapstructure:"readTimeout"`
	WriteTimeoutSec      int      `mapstructure:"writeTimeout"`
	IdleTimeoutSec       int      `mapstructure:"idleTimeout"`
	ReadHeaderTimeoutSec int      `mapstructure:"readHeaderTimeout"`
	ShutdownTimeoutSec   int      `mapstructure:"shutdownTimeout"`
	CORSAllowedOrigins   []string `mapstructure:"corsAllowedOrigins"`
}

func (s ServerConfig) ReadTimeout() time.Duration { return seconds(s.ReadTimeoutSec) }

func (s ServerConfig) WriteTimeout() time.Duration { return seconds(s.WriteTimeoutSec) }

func (s ServerConfig) IdleTimeout() time.Duration { return seconds(s.IdleTimeoutSec) }

func (s ServerConfig) ReadHeaderTimeout() time.Duration { return seconds(s.ReadHeaderTimeoutSec) }

func (s ServerConfig) ShutdownTimeout() time.Duration { return seconds(s.ShutdownTimeoutSec) }

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string `mapstructure:"driver"` // postgres | sqlite
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	Database           string `mapstructure:"database"`
	SSLMode            string `mapstructure:"sslMode"`
	SQLitePath         string `mapstructure:"sqlitePath"`
	IsolationLevel     string `mapstructure:"isolationLevel"` // read_committed | serializable
	MaxOpenConns       int    `mapstructure:"maxOpenConns"`
	MaxIdleConns       int    `mapstructure:"maxIdleConns"`
	ConnMaxLifetimeMin int    `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTimeMin int    `mapstructure:"connMaxIdleTime"`
	QueryTimeoutSec    int    `mapstructure:"queryTimeout"`
	SlowQueryMs        int    `mapstructure:"slowQueryMs"`
	RetryAttempts      int    `mapstructure:"retryAttempts"`
	RetryDelaySec      int    `mapstructure:"retryDelay"`
	TxRetries          int    `mapstructure:"txRetries"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

// LedgerConfig contains the business rules of the ledger
type LedgerConfig struct {
	DefaultLowBalanceThreshold int64 `mapstructure:"defaultLowBalanceThreshold"`
	DefaultListLimit           int   `mapstructure:"defaultListLimit"`
	MaxListLimit               int   `mapstructure:"maxListLimit"`
	QueueBufferSize            int   `mapstructure:"queueBufferSize"`
	QueueIdleTimeoutSec        int   `mapstructure:"queueIdleTimeout"`
}

func (l LedgerConfig) QueueIdleTimeout() time.Duration { return seconds(l.QueueIdleTimeoutSec) }

// AuthConfig contains caller identity settings
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwtSecret"`
	Issuer      string `mapstructure:"issuer"`
	Audience    string `mapstructure:"audience"`
	CookieName  string `mapstructure:"cookieName"`
	TokenTTLMin int    `mapstructure:"tokenTtl"`
}

func (a AuthConfig) TokenTTL() time.Duration { return time.Duration(a.TokenTTLMin) * time.Minute }

// LockConfig selects the cross-process account lock
type LockConfig struct {
	Backend       string `mapstructure:"backend"` // none | database | redis
	TTLMs         int    `mapstructure:"ttlMs"`
	WaitTimeoutMs int    `mapstructure:"waitTimeoutMs"`
	KeyPrefix     string `mapstructure:"keyPrefix"`
}

func (l LockConfig) TTL() time.Duration { return millis(l.TTLMs) }

func (l LockConfig) WaitTimeout() time.Duration { return millis(l.WaitTimeoutMs) }

// RedisConfig contains the Redis connection used by the redis lock backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// EventsConfig controls the transactional outbox and its Kafka relay
type EventsConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	Brokers         []string `mapstructure:"brokers"`
	Topic           string   `mapstructure:"topic"`
	ClientID        string   `mapstructure:"clientId"`
	RelayIntervalMs int      `mapstructure:"relayIntervalMs"`
	BatchSize       int      `mapstructure:"batchSize"`
	MaxAttempts     int      `mapstructure:"maxAttempts"`
}

func (e EventsConfig) RelayInterval() time.Duration { return millis(e.RelayIntervalMs) }

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

func millis(n int) time.Duration { return time.Duration(n) * time.Millisecond }
