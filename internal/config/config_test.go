package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "ALLOWED_ORIGINS", "JWT_SECRET", "LOG_LEVEL", "LOG_FORMAT",
		"DEFAULT_CULTURE", "SUPPORTED_CULTURES", "HEARTBEAT_INTERVAL",
		"ERROR_REPORT_LIMIT", "ERROR_REPORT_RETENTION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.Address)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "en-US", cfg.DefaultCulture)
	assert.Equal(t, []string{"en-US"}, cfg.SupportedCultures)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 100, cfg.ErrorReportLimit)
	assert.Equal(t, 24*time.Hour, cfg.ErrorReportRetention)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("ALLOWED_ORIGINS", " http://a.example , ,http://b.example")
	t.Setenv("DEFAULT_CULTURE", "de-DE")
	t.Setenv("SUPPORTED_CULTURES", "de-DE,en-US")
	t.Setenv("HEARTBEAT_INTERVAL", "0")
	t.Setenv("ERROR_REPORT_LIMIT", "5")
	t.Setenv("ERROR_REPORT_RETENTION", "1h")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "de-DE", cfg.DefaultCulture)
	assert.Equal(t, []string{"de-DE", "en-US"}, cfg.SupportedCultures)
	assert.Equal(t, time.Duration(0), cfg.HeartbeatInterval)
	assert.Equal(t, 5, cfg.ErrorReportLimit)
	assert.Equal(t, time.Hour, cfg.ErrorReportRetention)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("HEARTBEAT_INTERVAL", "soon")
	t.Setenv("ERROR_REPORT_LIMIT", "-3")
	t.Setenv("ERROR_REPORT_RETENTION", "-1h")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 100, cfg.ErrorReportLimit)
	assert.Equal(t, 24*time.Hour, cfg.ErrorReportRetention)
}
