package sand

import (
	"slices"
	"testing"

	"falling-sand/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestEngineResize(t *testing.T) {
	e := newTestEngine(t, 10, 10, "floor")
	require.NoError(t, e.Resize(7, 3))
	assert.Equal(t, core.Size{W: 7, H: 3}, e.Size())
	assert.Equal(t, 21, e.Census().Count(Empty))
	assert.Equal(t, 7*3*4, len(e.Render().Pix))

	err := e.Resize(-1, 4)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
	assert.Equal(t, core.Size{W: 7, H: 3}, e.Size(), "failed resize keeps the old grid")
}

func TestEngineMaterialSelection(t *testing.T) {
	e := newTestEngine(t, 8, 8, "empty")
	assert.Equal(t, Sand, e.Material())

	require.NoError(t, e.SelectMaterial("water"))
	assert.Equal(t, Water, e.Material())
	assert.Equal(t, "water", e.Tool())

	assert.ErrorIs(t, e.SetMaterial(Material(30)), ErrUnknownMaterial)
	assert.ErrorIs(t, e.SelectTool("plasma"), ErrUnknownMaterial)
	assert.Equal(t, Water, e.Material(), "a rejected selection keeps the previous one")
	assert.Equal(t, []string{"empty", "sand", "water", "stone", "fire"}, e.Tools())
}

func TestEngineFrameHonoursPause(t *testing.T) {
	e := newTestEngine(t, 8, 8, "empty")
	e.SetPaused(true)

	err := e.Frame(Stroke{X: 4, Y: 0, Radius: 0, Material: Sand, Probability: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, e.Ticks())
	assert.Equal(t, Sand, e.Grid().Get(4, 0), "strokes still apply while paused")

	e.SetPaused(false)
	require.NoError(t, e.Frame())
	assert.Equal(t, 1, e.Ticks())
	assert.Equal(t, Sand, e.Grid().Get(4, 1))
}

func TestEngineFrameReportsBadStrokes(t *testing.T) {
	e := newTestEngine(t, 8, 8, "empty")
	err := e.Frame(
		Stroke{X: 1, Y: 1, Radius: -2, Material: Sand, Probability: 1},
		Stroke{X: 6, Y: 6, Radius: 0, Material: Stone, Probability: 1},
	)
	assert.ErrorIs(t, err, ErrInvalidBrush)
	assert.Equal(t, Stone, e.Grid().Get(6, 6), "valid strokes are applied alongside invalid ones")
	assert.Equal(t, 1, e.Ticks())
}

func TestEnginePaintUsesBrushConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Brush.Probability = 1
	cfg.Material = "stone"
	e, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, e.Paint(10, 10))
	assert.Equal(t, 25, e.Census().Count(Stone))

	require.NoError(t, e.SelectMaterial("eraser"))
	require.NoError(t, e.Paint(10, 10))
	assert.Zero(t, e.Census().Count(Stone))
}

func TestEngineResetIsDeterministic(t *testing.T) {
	run := func(seed int64) []uint8 {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 30, 30
		cfg.Scene = "dunes"
		e, err := New(cfg)
		require.NoError(t, err)
		e.Reset(seed)
		require.NoError(t, e.SelectMaterial("water"))
		for i := 0; i < 40; i++ {
			require.NoError(t, e.Frame(e.Stroke(i%30, 2)))
		}
		return slices.Clone(e.Cells())
	}

	assert.Equal(t, run(11), run(11))
	assert.NotEqual(t, run(11), run(12))
}

func TestEngineResetRestoresScene(t *testing.T) {
	e := newTestEngine(t, 10, 10, "floor")
	e.Grid().Set(3, 3, Sand)
	e.Step()
	e.Reset(e.Config().Seed)

	assert.Equal(t, DefaultConfig().Seed, e.Seed())
	assert.Equal(t, 0, e.Ticks())
	assert.Equal(t, 10, e.Census().Count(Stone))
	assert.Equal(t, 90, e.Census().Count(Empty))
}

func TestEngineResetHonoursZeroSeed(t *testing.T) {
	run := func(seed int64) []uint8 {
		e := newTestEngine(t, 16, 16, "dunes")
		e.Reset(seed)
		require.NoError(t, e.PaintStroke(Stroke{X: 8, Y: 2, Radius: 4, Material: Water, Probability: 0.5}))
		for i := 0; i < 20; i++ {
			e.Step()
		}
		assert.Equal(t, seed, e.Seed())
		return slices.Clone(e.Cells())
	}

	zero := run(0)
	assert.Equal(t, zero, run(0))
	assert.NotEqual(t, zero, run(DefaultConfig().Seed), "zero is a seed of its own")
}

func TestRegisteredInCoreRegistry(t *testing.T) {
	sim, err := core.New("sand", map[string]string{"w": "12", "h": "9", "scene": "basin"})
	require.NoError(t, err)
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, core.Size{W: 12, H: 9}, sim.Size())

	_, ok := sim.(core.Painter)
	assert.True(t, ok)
	_, ok = sim.(core.PixelFiller)
	assert.True(t, ok)
	_, ok = sim.(core.Toolbox)
	assert.True(t, ok)

	sim, err = core.New("sand", map[string]string{"scene": "volcano"})
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Nil(t, sim)
}
