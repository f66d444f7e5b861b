package ui

import (
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *sand.Engine {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	e, err := sand.New(cfg)
	require.NoError(t, err)
	return e
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Sand Controls", Title(newEngine(t)))
	assert.Equal(t, "Controls", Title(nil))
}

func TestToolLine(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, "Tool: sand [1-5]", ToolLine(e))
	require.NoError(t, e.SelectTool("fire"))
	assert.Equal(t, "Tool: fire [1-5]", ToolLine(e))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3", FormatValue(core.ParameterControl{Type: core.ParamTypeInt}, 2.6))
	assert.Equal(t, "0.10", FormatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.01}, 0.1))
	assert.Equal(t, "0.5", FormatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5}, 0.5))
	assert.Equal(t, "0.0500", FormatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.0005}, 0.05))
}

func TestNudge(t *testing.T) {
	radius := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 4, HasMin: true, HasMax: true}

	v, ok := Nudge(radius, 2, 1)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = Nudge(radius, 4, 1)
	assert.False(t, ok, "already at max")
	_, ok = Nudge(radius, 0, -1)
	assert.False(t, ok, "already at min")
	_, ok = Nudge(radius, 2, 0)
	assert.False(t, ok)

	decay := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true}
	v, ok = Nudge(decay, 0.98, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v, "clamped to max")
}

func TestNudgeDrivesEngineControls(t *testing.T) {
	e := newEngine(t)
	var fire core.ParameterControl
	for _, c := range e.ParameterControls() {
		if c.Key == "fire_decay" {
			fire = c
		}
	}
	require.Equal(t, "fire_decay", fire.Key)

	v, ok := Nudge(fire, e.Config().Params.FireDecay, 1)
	require.True(t, ok)
	require.True(t, e.SetFloatParameter(fire.Key, v))
	assert.InDelta(t, v, e.Rules().Rule(sand.Fire).Decay, 1e-9)
}

func TestBrushOutline(t *testing.T) {
	x0, y0, x1, y1, ok := BrushOutline(1, 1, 2, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 0, 3, 3}, []int{x0, y0, x1, y1})

	x0, y0, x1, y1, ok = BrushOutline(9, 5, 0, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, []int{9, 5, 9, 5}, []int{x0, y0, x1, y1})

	_, _, _, _, ok = BrushOutline(20, 20, 1, 10, 10)
	assert.False(t, ok)
	_, _, _, _, ok = BrushOutline(5, 5, -1, 10, 10)
	assert.False(t, ok)
}
