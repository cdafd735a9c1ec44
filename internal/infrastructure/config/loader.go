package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LEDGER"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration for the environment named by LEDGER_ENV
func LoadConfig() (*Config, error) {
	return LoadConfigFor("")
}

// LoadConfigFor loads configuration for env, falling back to LEDGER_ENV when env is empty
func LoadConfigFor(env string) (*Config, error) {
	// a missing .env is normal outside local development
	_ = loadDotEnvFile()

	if env == "" {
		env = getEnvironment()
	}
	return Load(env, ConfigPaths...)
}

// Load reads configs/{env}.yaml from the first matching path and applies LEDGER_* overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.corsAllowedOrigins", []string{})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "ledger.db")
	v.SetDefault("database.isolationLevel", "read_committed")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowQueryMs", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.txRetries", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ledger.defaultLowBalanceThreshold", 100)
	v.SetDefault("ledger.defaultListLimit", 50)
	v.SetDefault("ledger.maxListLimit", 200)
	v.SetDefault("ledger.queueBufferSize", 100)
	v.SetDefault("ledger.queueIdleTimeout", 60)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.issuer", "arcanumspy")
	v.SetDefault("auth.audience", "credit-ledger")
	v.SetDefault("auth.cookieName", "arcanumspy_session")
	v.SetDefault("auth.tokenTtl", 60) // minutes

	v.SetDefault("lock.backend", "none")
	v.SetDefault("lock.ttlMs", 5000)
	v.SetDefault("lock.waitTimeoutMs", 2000)
	v.SetDefault("lock.keyPrefix", "ledger:lock:")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.brokers", []string{"localhost:9092"})
	v.SetDefault("events.topic", "ledger-events")
	v.SetDefault("events.clientId", "credit-ledger")
	v.SetDefault("events.relayIntervalMs", 1000)
	v.SetDefault("events.batchSize", 100)
	v.SetDefault("events.maxAttempts", 10)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from LEDGER_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short, documented variable names onto config keys.
// Everything else is reachable through the automatic LEDGER_<SECTION>_<KEY> binding.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"LEDGER_DB_DRIVER":       "database.driver",
		"LEDGER_DB_HOST":         "database.host",
		"LEDGER_DB_PORT":         "database.port",
		"LEDGER_DB_USERNAME":     "database.username",
		"LEDGER_DB_PASSWORD":     "database.password",
		"LEDGER_DB_NAME":         "database.database",
		"LEDGER_DB_SSL_MODE":     "database.sslMode",
		"LEDGER_DB_SQLITE_PATH":  "database.sqlitePath",
		"LEDGER_DB_ISOLATION":    "database.isolationLevel",
		"LEDGER_SERVER_HOST":     "server.host",
		"LEDGER_SERVER_PORT":     "server.port",
		"LEDGER_LOGGER_LEVEL":    "logger.level",
		"LEDGER_AUTH_JWT_SECRET": "auth.jwtSecret",
		"LEDGER_LOCK_BACKEND":    "lock.backend",
		"LEDGER_REDIS_ADDR":      "redis.addr",
		"LEDGER_REDIS_PASSWORD":  "redis.password",
		"LEDGER_KAFKA_BROKERS":   "events.brokers",
		"LEDGER_EVENTS_ENABLED":  "events.enabled",
	}
	for env, key := range overrides {
		if value, ok := os.LookupEnv(env); ok && value != "" {
			if key == "events.brokers" {
				v.Set(key, strings.Split(value, ","))
				continue
			}
			v.Set(key, value)
		}
	}
}
