package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "AI Nexus", cfg.App.Name)
	assert.Equal(t, ":8000", cfg.Inference.Address)
	assert.Equal(t, ":8001", cfg.Waitlist.Address)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Server)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
inference:
  address: ":9000"
  read_timeout: 10s
database:
  driver: mysql
  host: db.internal
smtp:
  from: hello@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Inference.Address)
	assert.Equal(t, 10*time.Second, cfg.Inference.ReadTimeout)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "hello@example.com", cfg.SMTP.From)

	// Untouched sections keep defaults.
	assert.Equal(t, ":8001", cfg.Waitlist.Address)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Inference.Address)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SUPABASE_DB_URL", "postgres://u:p@host:5432/db")
	t.Setenv("NEXUS_DB_DRIVER", "postgres")
	t.Setenv("SMTP_SERVER", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("FROM_EMAIL", "team@example.com")
	t.Setenv("NEXUS_LOG_LEVEL", "debug")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@host:5432/db", cfg.Database.URL)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Server)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "team@example.com", cfg.SMTP.From)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("smtp:\n  server: file.example.com\n"), 0o644))

	t.Setenv("SMTP_SERVER", "env.example.com")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env.example.com", cfg.SMTP.Server)
}

func TestEnvInvalidInteger(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := NewLoader().Load()
	require.Error(t, err)
}

func TestSerializeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inference.Address = ":7000"

	data, err := cfg.Serialize()
	require.NoError(t, err)

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, ":7000", parsed.Inference.Address)
	assert.Equal(t, cfg.Database.Driver, parsed.Database.Driver)
}
