package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port              string
	JWTSecret         string
	JWTIssuer         string
	JWTTTL            time.Duration
	CountdownInterval time.Duration
}

// Load reads configuration from the environment, applying development
// defaults for anything unset.
func Load() Config {
	cfg := Config{
		Port:      fallback(os.Getenv("PORT"), "8080"),
		JWTSecret: fallback(os.Getenv("JWT_SECRET"), "penny-auction-dev-secret"),
		JWTIssuer: fallback(os.Getenv("JWT_ISSUER"), "penny-auction"),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	seconds := fallback(os.Getenv("COUNTDOWN_INTERVAL_SECONDS"), "1")
	if tick, err := strconv.Atoi(seconds); err == nil && tick > 0 {
		cfg.CountdownInterval = time.Duration(tick) * time.Second
	} else {
		cfg.CountdownInterval = time.Second
	}

	return cfg
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
