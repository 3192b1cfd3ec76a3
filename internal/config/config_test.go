package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "db"
port = 5433
user = "booking"
password = "secret"
dbname = "bookings"

[logs]
level = "debug"

[slots]
timezone = "Europe/Moscow"
work_start = "10:00"
work_end = "18:00"
min_lead_minutes = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "Europe/Moscow", cfg.Slots.Timezone)
	assert.Equal(t, 60, cfg.Slots.MinLeadMinutes)
	assert.Equal(t, []int{15, 30, 45, 60, 90, 120}, cfg.Slots.AllowedDurations)
	assert.Equal(t, 30, cfg.Statistics.WindowDays)
	assert.Equal(t, "host=db port=5433 user=booking password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKING_DATABASE_PASSWORD", "from-env")
	t.Setenv("BOOKING_SLOTS_MIN_LEAD_MINUTES", "30")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 30, cfg.Slots.MinLeadMinutes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown timezone", mutate: func(c *Config) { c.Slots.Timezone = "Mars/Olympus" }},
		{name: "work start after end", mutate: func(c *Config) { c.Slots.WorkStart = "18:00" }},
		{name: "malformed work end", mutate: func(c *Config) { c.Slots.WorkEnd = "5pm" }},
		{name: "negative lead", mutate: func(c *Config) { c.Slots.MinLeadMinutes = -1 }},
		{name: "empty durations", mutate: func(c *Config) { c.Slots.AllowedDurations = nil }},
		{name: "zero duration", mutate: func(c *Config) { c.Slots.AllowedDurations = []int{0, 30} }},
		{name: "zero window", mutate: func(c *Config) { c.Statistics.WindowDays = 0 }},
		{name: "events without url", mutate: func(c *Config) { c.Events.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, defaults().Validate())
}
