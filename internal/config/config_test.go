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

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 5

[database]
host = "db.local"
port = 5432
user = "salon"
password = "secret"
dbname = "salon_booking"
sslmode = "disable"

[redis]
addr = "redis.local:6379"
settings_channel = "custom:settings"

[logs]
file = "app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "salon-booking-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "custom:settings", cfg.Redis.SettingsChannel)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "dbname=salon_booking")
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "salon"
password = "secret"
dbname = "salon_booking"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "salon:settings", cfg.Redis.SettingsChannel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
