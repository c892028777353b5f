package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "DB_DRIVER", "DB_DSN",
	"JWT_SECRET", "JWT_TTL", "ACCESS_POLICY", "STORAGE_BACKEND", "S3_BUCKET",
	"S3_BASE_URL", "S3_REGION", "S3_ENDPOINT", "S3_USE_PATH_STYLE",
	"S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "MAX_UPLOAD_MB",
}

// clearEnv deja el entorno sin las keys; t.Setenv restaura al final.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, "owner", cfg.AccessPolicy)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com/", cfg.S3BaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "/tmp/cats.db")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "catcollector")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("MAX_UPLOAD_MB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/cats.db", cfg.DBDSN)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "catcollector", cfg.S3Bucket)
	assert.True(t, cfg.S3UsePathStyle)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_MB", "ten")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	clearEnv(t)
	t.Setenv("JWT_TTL", "soon")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	base := Config{
		DBDriver:       DriverMemory,
		StorageBackend: StorageMemory,
		JWTTTL:         time.Hour,
		MaxUploadBytes: 1 << 20,
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"postgres without dsn", func(c *Config) { c.DBDriver = DriverPostgres }},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"s3 without bucket", func(c *Config) { c.StorageBackend = StorageS3 }},
		{"unknown storage", func(c *Config) { c.StorageBackend = "gcs" }},
		{"half s3 credentials", func(c *Config) {
			c.StorageBackend = StorageS3
			c.S3Bucket = "b"
			c.S3AccessKeyID = "AKIA"
		}},
		{"zero ttl", func(c *Config) { c.JWTTTL = 0 }},
		{"zero upload size", func(c *Config) { c.MaxUploadBytes = 0 }},
	}

	require.NoError(t, base.Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
