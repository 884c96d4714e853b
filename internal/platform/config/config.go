package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration sourced from the environment.
type Server struct {
	Addr          string
	Environment   string
	JWTSecret     string
	JWTExpiresIn  time.Duration
	SupabaseURL   string
	SupabaseKey   string
	LicenseBucket string
}

const (
	defaultPort      = "3000"
	defaultExpiresIn = time.Hour
	defaultBucket    = "lawyer-licenses"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		// Use a default for development - should be overridden in production
		jwtSecret = "dev-secret-key-change-in-production"
	}

	expiresIn := defaultExpiresIn
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		expiresIn = parseExpiry(raw, defaultExpiresIn)
	}

	bucket := os.Getenv("LICENSE_BUCKET")
	if bucket == "" {
		bucket = defaultBucket
	}

	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	return Server{
		Addr:          ":" + port,
		Environment:   environment,
		JWTSecret:     jwtSecret,
		JWTExpiresIn:  expiresIn,
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_KEY"),
		LicenseBucket: bucket,
	}
}

// parseExpiry accepts either a Go duration ("1h30m") or a bare number of
// seconds ("3600"), matching the tokens commonly found in JWT_EXPIRES_IN.
func parseExpiry(raw string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
