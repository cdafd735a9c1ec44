package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  driver: sqlite
  sqlitePath: "file::memory:"
logger:
  level: debug
  format: console
auth:
  jwtSecret: test-secret
lock:
  backend: database
  waitTimeoutMs: 1500
events:
  enabled: true
  topic: ledger-test
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "read_committed", cfg.Database.IsolationLevel)
	assert.Equal(t, int64(100), cfg.Ledger.DefaultLowBalanceThreshold)
	assert.Equal(t, 50, cfg.Ledger.DefaultListLimit)
	assert.Equal(t, 200, cfg.Ledger.MaxListLimit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Lock.WaitTimeout())
	assert.Equal(t, 5*time.Second, cfg.Lock.TTL())
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "ledger-test", cfg.Events.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
	assert.Equal(t, time.Second, cfg.Events.RelayInterval())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)

	t.Setenv("LEDGER_AUTH_JWT_SECRET", "from-env")
	t.Setenv("LEDGER_SERVER_PORT", "7070")
	t.Setenv("LEDGER_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LEDGER_LEDGER_MAXLISTLIMIT", "500")

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, 500, cfg.Ledger.MaxListLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("staging", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	dir := writeConfig(t, Test, `
database:
  driver: postgres
  isolationLevel: repeatable_read
lock:
  backend: zookeeper
`)

	_, err := Load(Test, dir)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "database.host")
	assert.Contains(t, msg, "database.username")
	assert.Contains(t, msg, "database.isolationLevel")
	assert.Contains(t, msg, "auth.jwtSecret")
	assert.Contains(t, msg, "lock.backend")
}

func TestSecurityWarnings(t *testing.T) {
	cfg := &Config{
		Environment: Production,
		Database:    DatabaseConfig{Driver: "postgres", SSLMode: "disable"},
		Auth:        AuthConfig{JWTSecret: "short"},
		Server:      ServerConfig{CORSAllowedOrigins: []string{"*"}},
	}
	assert.Len(t, cfg.SecurityWarnings(), 3)

	cfg.Environment = Development
	assert.Empty(t, cfg.SecurityWarnings())
}
