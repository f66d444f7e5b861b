package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettleTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 9, 12
	tick, settled := SettleTime(cfg, 1, 40)
	assert.True(t, settled)
	assert.Equal(t, 10, tick)

	tick, settled = SettleTime(cfg, 1, 5)
	assert.False(t, settled)
	assert.Equal(t, 5, tick)
}

func TestFireLifetimeWithoutDecayNeverEnds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Params.FireDecay = 0
	tick, out := FireLifetime(cfg, 1, 50)
	assert.False(t, out)
	assert.Equal(t, 50, tick)
}

func TestSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	seeds := []int64{8, 3, 5, 1, 2, 7, 6, 4}

	summary := Sweep(cfg, seeds, 200, 3)

	assert.Equal(t, len(seeds), summary.Runs)
	assert.Zero(t, summary.FireAlive)
	assert.Zero(t, summary.Unsettled)
	assert.Zero(t, summary.Violations)
	assert.Equal(t, 14, summary.SettleMax)
	assert.Greater(t, summary.FireMean, 0.0)
	assert.LessOrEqual(t, summary.FireMean, float64(summary.FireMax))
	for i, res := range summary.Results {
		assert.Equal(t, int64(i+1), res.Seed)
	}
}
