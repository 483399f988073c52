package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  database: "moto_rental"
redis:
  addr: "localhost:6379"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "moto.registered", cfg.Redis.MotoRegisteredChannel)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 24, cfg.JWT.TokenExpiryHours)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.FlagOverdueRentals)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendReturnReminders)
	assert.Equal(t, "0 30 3 * * 0", cfg.Scheduler.PurgeOldNotifications)
	assert.Equal(t, int32(90), cfg.Scheduler.NotificationRetentionDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_RejectsShortJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.ErrorContains(t, err, "JWT secret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Contains(t, cfg.GetDatabaseConnectionString(), "postgres://postgres:@localhost:5432/moto_rental")
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
}
