package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults when environment is empty", func(t *testing.T) {
		cfg := FromEnv()

		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, time.Hour, cfg.JWTExpiresIn)
		assert.Equal(t, "lawyer-licenses", cfg.LicenseBucket)
		assert.NotEmpty(t, cfg.JWTSecret)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRES_IN", "15m")
		t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
		t.Setenv("SUPABASE_KEY", "service-role-key")

		cfg := FromEnv()

		assert.Equal(t, ":8081", cfg.Addr)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, 15*time.Minute, cfg.JWTExpiresIn)
		assert.Equal(t, "https://xyz.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "service-role-key", cfg.SupabaseKey)
	})
}

func TestParseExpiry(t *testing.T) {
	assert.Equal(t, 90*time.Minute, parseExpiry("1h30m", time.Hour))
	assert.Equal(t, time.Hour, parseExpiry("3600", time.Minute))
	assert.Equal(t, time.Hour, parseExpiry("garbage", time.Hour))
	assert.Equal(t, time.Hour, parseExpiry("-5", time.Hour))
}
