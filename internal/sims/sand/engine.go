package sand

import (
	"errors"
	"fmt"
	"image"

	"falling-sand/internal/core"
)

// renderSeedOffset separates the flicker stream from the simulation stream.
const renderSeedOffset = 0x5f3759df

// Engine ties the grid, rule table, brush and renderer together behind the
// host-facing contract. It is not safe for concurrent use; hosts drive it
// from a single loop.
type Engine struct {
	cfg Config

	grid     *Grid
	rules    *RuleTable
	renderer *Renderer
	rng      *core.RNG

	material Material
	paused   bool
	ticks    int
	seed     int64

	img *image.RGBA
}

// New returns an engine configured from cfg with its scene applied.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	material, _ := ParseMaterial(cfg.Material)
	e := &Engine{
		cfg:      cfg,
		grid:     grid,
		rules:    DefaultRules(cfg.Params),
		renderer: NewRenderer(cfg.Seed + renderSeedOffset),
		rng:      core.NewRNG(cfg.Seed),
		material: material,
		seed:     cfg.Seed,
	}
	if err := ApplyScene(cfg.Scene, e.grid, cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "sand" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.Width(), H: e.grid.Height()} }

// Cells exposes the raw material tags in row-major order.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// Grid exposes the material store.
func (e *Engine) Grid() *Grid { return e.grid }

// Rules exposes the rule table so callers can define extra materials.
func (e *Engine) Rules() *RuleTable { return e.rules }

// Renderer exposes the renderer so callers can colour extra materials.
func (e *Engine) Renderer() *Renderer { return e.renderer }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the seed of the last reset.
func (e *Engine) Seed() int64 { return e.seed }

// Ticks returns how many steps ran since the last reset.
func (e *Engine) Ticks() int { return e.ticks }

// Reset reseeds the random sources with seed, clears the grid and rebuilds
// the configured scene. Every seed, zero included, is used as given.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.rng.Reseed(seed)
	e.renderer.Reseed(seed + renderSeedOffset)
	e.ticks = 0
	// The scene name was validated when the engine was built.
	_ = ApplyScene(e.cfg.Scene, e.grid, seed)
}

// Resize reallocates the grid at the new dimensions, filled with Empty.
func (e *Engine) Resize(w, h int) error {
	grid, err := NewGrid(w, h)
	if err != nil {
		return err
	}
	e.grid = grid
	e.cfg.Width, e.cfg.Height = w, h
	e.ticks = 0
	e.img = nil
	return nil
}

// Clear sets every cell to Empty.
func (e *Engine) Clear() { e.grid.Clear() }

// Step advances the simulation by exactly one tick, regardless of pause.
func (e *Engine) Step() {
	Step(e.grid, e.rules, e.rng)
	e.ticks++
}

// SetPaused toggles whether Frame advances the simulation.
func (e *Engine) SetPaused(paused bool) { e.paused = paused }

// Paused reports whether Frame skips stepping.
func (e *Engine) Paused() bool { return e.paused }

// Frame runs one host frame: apply strokes, then step unless paused.
// Invalid strokes are skipped and reported together after the valid ones
// were applied.
func (e *Engine) Frame(strokes ...Stroke) error {
	var errs []error
	for _, s := range strokes {
		if err := e.PaintStroke(s); err != nil {
			errs = append(errs, err)
		}
	}
	if !e.paused {
		e.Step()
	}
	return errors.Join(errs...)
}

// Material returns the material subsequent Paint calls use.
func (e *Engine) Material() Material { return e.material }

// SetMaterial selects the material subsequent Paint calls use.
func (e *Engine) SetMaterial(m Material) error {
	if !e.rules.Known(m) {
		return fmt.Errorf("select %s: %w", m, ErrUnknownMaterial)
	}
	e.material = m
	return nil
}

// SelectMaterial selects a built-in material by name.
func (e *Engine) SelectMaterial(name string) error {
	m, err := ParseMaterial(name)
	if err != nil {
		return err
	}
	return e.SetMaterial(m)
}

// Tools lists the selectable materials in key order.
func (e *Engine) Tools() []string {
	ms := Materials()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return names
}

// Tool returns the selected material name.
func (e *Engine) Tool() string { return e.material.String() }

// SelectTool is SelectMaterial under the host tool contract.
func (e *Engine) SelectTool(name string) error { return e.SelectMaterial(name) }

// Stroke builds a stroke at (x, y) from the selected material and the
// configured brush.
func (e *Engine) Stroke(x, y int) Stroke {
	return Stroke{
		X:           x,
		Y:           y,
		Radius:      e.cfg.Brush.Radius,
		Material:    e.material,
		Probability: e.cfg.Brush.Probability,
	}
}

// Paint stamps the configured brush with the selected material at (x, y).
func (e *Engine) Paint(x, y int) error {
	return e.PaintStroke(e.Stroke(x, y))
}

// PaintStroke applies an explicit stroke.
func (e *Engine) PaintStroke(s Stroke) error {
	_, err := Paint(e.grid, e.rules, s, e.rng)
	return err
}

// Render draws the current grid. The returned image is reused by the next
// call.
func (e *Engine) Render() *image.RGBA {
	e.img = e.renderer.Render(e.grid, e.img)
	return e.img
}

// FillRGBA writes the current frame into buf (4 bytes per cell).
func (e *Engine) FillRGBA(buf []byte) {
	e.renderer.FillRGBA(buf, e.grid.Cells())
}

// Census counts the materials currently on the grid.
func (e *Engine) Census() Census { return TakeCensus(e.grid) }

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		e, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
