// Package config
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	AllowedOrigins []string
	JWTSecret      string
	LogLevel       string
	LogFormat      string

	DefaultCulture    string
	SupportedCultures []string

	HeartbeatInterval    time.Duration
	ErrorReportLimit     int
	ErrorReportRetention time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	// Logs
	logLevel := getEnv("LOG_LEVEL", "info")
	logFormat := getEnv("LOG_FORMAT", "text")

	// HTTP
	addr := getEnv("HTTP_ADDR", ":3000")
	origins := getList("ALLOWED_ORIGINS")
	jwtSecret := getEnv("JWT_SECRET", "")

	// Culture
	defaultCulture := getEnv("DEFAULT_CULTURE", "en-US")
	supported := getList("SUPPORTED_CULTURES")
	if len(supported) == 0 {
		supported = []string{defaultCulture}
	}

	// Workers
	heartbeat := getDuration("HEARTBEAT_INTERVAL", 30*time.Second)
	retention := getDuration("ERROR_REPORT_RETENTION", 24*time.Hour)

	reportLimit := 100
	if raw := os.Getenv("ERROR_REPORT_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			reportLimit = n
		}
	}

	return &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,

		Address:        addr,
		AllowedOrigins: origins,
		JWTSecret:      jwtSecret,

		DefaultCulture:    defaultCulture,
		SupportedCultures: supported,

		HeartbeatInterval:    heartbeat,
		ErrorReportLimit:     reportLimit,
		ErrorReportRetention: retention,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getList(key string) []string {
	var out []string
	raw := os.Getenv(key)
	if raw == "" {
		return out
	}

	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getDuration accepts "0" to disable a feature; negative or malformed values
// fall back.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
