package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_ENABLED", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("SITE_BASE_URL", "")
	t.Setenv("ADMIN_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Site.CORSOrigins)
	assert.Equal(t, "http://localhost:8080", cfg.Site.BaseURL)
	assert.Equal(t, 5, cfg.Inquiry.RatePerHour)
	assert.Equal(t, 365*24*time.Hour, cfg.Inquiry.Retention)
	assert.Empty(t, cfg.Inquiry.AdminAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("REDIS_ENABLED", "yes-please")
	t.Setenv("CORS_ORIGINS", "https://vrgreentek.com, https://www.vrgreentek.com ,")
	t.Setenv("SITE_BASE_URL", "https://vrgreentek.com/")
	t.Setenv("INQUIRY_RETENTION", "720h")
	t.Setenv("HTTP_READ_TIMEOUT", "bogus")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port, "invalid int falls back to default")
	assert.False(t, cfg.Redis.Enabled, "invalid bool falls back to default")
	assert.Equal(t, []string{"https://vrgreentek.com", "https://www.vrgreentek.com"}, cfg.Site.CORSOrigins)
	assert.Equal(t, "https://vrgreentek.com", cfg.Site.BaseURL)
	assert.Equal(t, 720*time.Hour, cfg.Inquiry.Retention)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Inquiry: InquiryConfig{RatePerHour: 1},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = ""
	assert.EqualError(t, c.Validate(), "PORT is required")

	c = valid()
	c.Database.Enabled = true
	assert.EqualError(t, c.Validate(), "DB_HOST is required when DB_ENABLED is set")

	c = valid()
	c.Redis.Enabled = true
	assert.EqualError(t, c.Validate(), "REDIS_ADDR is required when REDIS_ENABLED is set")

	c = valid()
	c.Inquiry.RatePerHour = 0
	assert.EqualError(t, c.Validate(), "INQUIRY_RATE_PER_HOUR must be positive")
}
