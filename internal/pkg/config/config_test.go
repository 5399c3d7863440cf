package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8099", cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 120.0, cfg.Simulation.SMPPrice)
	assert.Equal(t, 40000.0, cfg.Simulation.RECPrice)
	assert.Equal(t, 3.7, cfg.Simulation.PeakHours)
	assert.Equal(t, int64(500000), cfg.Simulation.MaintenanceCost)
	assert.Equal(t, 10*time.Minute, cfg.Simulation.CacheTTL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("SIM_SMP_PRICE", "150.5")
	t.Setenv("SIM_CACHE_TTL", "1m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 150.5, cfg.Simulation.SMPPrice)
	assert.Equal(t, time.Minute, cfg.Simulation.CacheTTL)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("SIM_PEAK_HOURS", "lots")
	t.Setenv("DB_ENABLED", "maybe")

	_, err := FromEnv()
	assert.Error(t, err)
}
