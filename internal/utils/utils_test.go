package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "DB_DRIVER: postgres\nDB_HOST: db.internal\nDATA_SOURCE: fixture\nDEFAULT_WEIGHT_KG: \"72.5\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DB_HOST", "override.internal")

	LoadConfigFrom(path)
	t.Cleanup(func() { config = defaultConfig() })

	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	assert.Equal(t, "override.internal", GetConfig("DB_HOST"))
	assert.Equal(t, DataSourceFixture, GetConfig("DATA_SOURCE"))
	assert.Equal(t, 72.5, GetDefaultWeight())
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "", GetConfig("UNKNOWN"))
}

func TestLoadConfigFromMissingFileKeepsDefaults(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { config = defaultConfig() })

	assert.Equal(t, DriverSQLite, GetConfig("DB_DRIVER"))
	assert.Equal(t, DataSourceLive, GetConfig("DATA_SOURCE"))
}

func TestGetDefaultWeightFallback(t *testing.T) {
	t.Cleanup(func() { config = defaultConfig() })

	for _, value := range []string{"", "abc", "-5", "0"} {
		SetConfig("DEFAULT_WEIGHT_KG", value)
		assert.Equal(t, 60.0, GetDefaultWeight(), value)
	}
}

func TestRateLimitAndSessionIdle(t *testing.T) {
	t.Cleanup(func() { config = defaultConfig() })

	assert.Equal(t, 10, GetRateLimit())
	assert.Equal(t, 24*time.Hour, GetSessionIdle())

	SetConfig("RATE_LIMIT", "0")
	SetConfig("SESSION_IDLE", "30m")
	assert.Equal(t, 0, GetRateLimit())
	assert.Equal(t, 30*time.Minute, GetSessionIdle())

	SetConfig("RATE_LIMIT", "many")
	SetConfig("SESSION_IDLE", "-1h")
	assert.Equal(t, 10, GetRateLimit())
	assert.Equal(t, 24*time.Hour, GetSessionIdle())
}

func TestFiniteValidation(t *testing.T) {
	InitValidator()

	type request struct {
		Weight float64 `validate:"finite"`
	}

	assert.NoError(t, Validate.Struct(request{Weight: 60}))
	assert.Error(t, Validate.Struct(request{Weight: math.NaN()}))
	assert.Error(t, Validate.Struct(request{Weight: math.Inf(1)}))
}
