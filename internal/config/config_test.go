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

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "redis"

[scheduling]
exclude_past_slots = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.True(t, cfg.Scheduling.ExcludePastSlots)
	assert.True(t, cfg.Scheduling.RevalidateOnCreate)
	assert.False(t, cfg.Scheduling.SpecialDateLunch)
	assert.Equal(t, 30, cfg.Scheduling.SlotStepMinutes)
	assert.Equal(t, 14, cfg.Scheduling.HorizonDays)
	assert.Equal(t, "appointments:", cfg.Redis.KeyPrefix)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[storage]\ndriver = \"mongo\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[scheduling]\nslot_step_minutes = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[notifications.sendgrid]\napi_key = \"SG.x\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := Default().Database
	db.Password = "secret"

	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=appointments sslmode=disable", db.DSN())
}
