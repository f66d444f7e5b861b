package sand

import (
	"testing"

	"falling-sand/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, w, h int, scene string) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Scene = scene
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestSandGrainComesToRestOnFloor(t *testing.T) {
	e := newTestEngine(t, 10, 10, "floor")
	e.Grid().Set(5, 0, Sand)

	for i := 0; i < 9; i++ {
		e.Step()
	}

	require.Equal(t, Sand, e.Grid().Get(5, 8))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := Empty
			switch {
			case y == 9:
				want = Stone
			case x == 5 && y == 8:
				want = Sand
			}
			assert.Equalf(t, want, e.Grid().Get(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestSandSettlesWithinFloorDepthAndStays(t *testing.T) {
	const floorY = 15
	e := newTestEngine(t, 7, floorY+1, "floor")
	e.Grid().Set(3, 0, Sand)

	for i := 0; i < floorY; i++ {
		e.Step()
	}
	require.Equal(t, Sand, e.Grid().Get(3, floorY-1))

	for i := 0; i < 50; i++ {
		e.Step()
		require.Equalf(t, Sand, e.Grid().Get(3, floorY-1), "grain moved on extra tick %d", i)
	}
}

func TestSandFallsOneRowPerTickButFireRisesThroughColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1, 6
	cfg.Params.FireDecay = 0
	e, err := New(cfg)
	require.NoError(t, err)

	e.Grid().Set(0, 0, Sand)
	e.Step()
	assert.Equal(t, Sand, e.Grid().Get(0, 1), "a falling grain lands in an already-scanned row")

	e.Clear()
	e.Grid().Set(0, 5, Fire)
	e.Step()
	assert.Equal(t, Fire, e.Grid().Get(0, 0), "rising material is revisited by the upward scan")
}

func TestSandSinksThroughWater(t *testing.T) {
	e := newTestEngine(t, 3, 3, "empty")
	e.Grid().Set(1, 1, Sand)
	e.Grid().Set(1, 2, Water)
	e.Grid().Set(0, 2, Stone)
	e.Grid().Set(2, 2, Stone)

	e.Step()

	assert.Equal(t, Sand, e.Grid().Get(1, 2))
	assert.Equal(t, Water, e.Grid().Get(1, 1))
}

func TestSandSlidesDiagonallyLeftFirst(t *testing.T) {
	e := newTestEngine(t, 3, 2, "empty")
	e.Grid().Set(1, 0, Sand)
	e.Grid().Set(1, 1, Stone)

	e.Step()
	assert.Equal(t, Sand, e.Grid().Get(0, 1))

	e.Clear()
	e.Grid().Set(1, 0, Sand)
	e.Grid().Set(1, 1, Stone)
	e.Grid().Set(0, 1, Stone)
	e.Step()
	assert.Equal(t, Sand, e.Grid().Get(2, 1))
}

func TestWaterSpreadsToBothSides(t *testing.T) {
	left, right := 0, 0
	for seed := int64(1); seed <= 200; seed++ {
		e := newTestEngine(t, 5, 5, "floor")
		e.Reset(seed)
		e.Grid().Set(2, 3, Water)

		e.Step()

		c := e.Census()
		require.Equal(t, 1, c.Count(Water))
		for x := 0; x < 5; x++ {
			if e.Grid().Get(x, 3) != Water {
				continue
			}
			switch {
			case x < 2:
				left++
			case x > 2:
				right++
			}
		}
	}
	assert.Greater(t, left, 60, "left flow is rare")
	assert.Less(t, left, 140, "left flow dominates")
	assert.Positive(t, right)
}

func TestMassIsConservedWithoutBrushInput(t *testing.T) {
	e := newTestEngine(t, 40, 30, "empty")
	rng := core.NewRNG(99)
	palette := []Material{Empty, Empty, Empty, Sand, Water, Stone, Fire}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			e.Grid().Set(x, y, palette[rng.IntN(len(palette))])
		}
	}

	before := e.Census()
	fire := before.Count(Fire)
	for tick := 0; tick < 300; tick++ {
		e.Step()
		c := e.Census()
		require.Equal(t, before.Count(Sand), c.Count(Sand), "sand count changed on tick %d", tick)
		require.Equal(t, before.Count(Water), c.Count(Water), "water count changed on tick %d", tick)
		require.Equal(t, before.Count(Stone), c.Count(Stone), "stone count changed on tick %d", tick)
		require.LessOrEqual(t, c.Count(Fire), fire, "fire grew on tick %d", tick)
		require.Equal(t, 40*30, c.Total())
		fire = c.Count(Fire)
	}
}

func TestWaterSettlesBelowBasinRim(t *testing.T) {
	const w, h = 24, 20
	e := newTestEngine(t, w, h, "basin")
	e.Reset(5)
	_, _, rim := BasinBounds(w, h)
	for y := 2; y <= 4; y++ {
		for x := 9; x <= 14; x++ {
			e.Grid().Set(x, y, Water)
		}
	}
	poured := e.Census().Count(Water)

	for i := 0; i < 1000; i++ {
		e.Step()
	}

	require.Equal(t, poured, e.Census().Count(Water))
	for y := 0; y < rim; y++ {
		for x := 0; x < w; x++ {
			assert.NotEqualf(t, Water, e.Grid().Get(x, y), "water above the rim at (%d,%d)", x, y)
		}
	}
}

func TestFireBurnsOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	for seed := int64(1); seed <= 100; seed++ {
		tick, out := FireLifetime(cfg, seed, 200)
		require.Truef(t, out, "seed %d: fire still burning after 200 ticks", seed)
		assert.LessOrEqual(t, tick, 200)
	}
}

func TestStoneAndEmptyNeverChange(t *testing.T) {
	e := newTestEngine(t, 8, 8, "empty")
	for x := 0; x < 8; x++ {
		e.Grid().Set(x, 3, Stone)
	}
	for i := 0; i < 20; i++ {
		e.Step()
	}
	assert.Equal(t, 8, e.Census().Count(Stone))
	assert.Equal(t, 56, e.Census().Count(Empty))
}
