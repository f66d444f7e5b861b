//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var outlineColor = color.RGBA{R: 240, G: 240, B: 250, A: 150}

// Overlay outlines the cells the brush will cover under the cursor. B toggles
// it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	if _, ok := o.sim.(core.Painter); !ok {
		return
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= size.W*o.scale || my >= size.H*o.scale {
		return
	}
	x0, y0, x1, y1, ok := BrushOutline(mx/o.scale, my/o.scale, o.brushRadius(), size.W, size.H)
	if !ok {
		return
	}
	s := float64(o.scale)
	left, top := float64(x0)*s, float64(y0)*s
	w, h := float64(x1-x0+1)*s, float64(y1-y0+1)*s
	o.fillRect(screen, left, top, w, 1)
	o.fillRect(screen, left, top+h-1, w, 1)
	o.fillRect(screen, left, top, 1, h)
	o.fillRect(screen, left+w-1, top, 1, h)
}

func (o *Overlay) brushRadius() int {
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return 0
	}
	p, ok := provider.Parameters().Lookup("brush_radius")
	if !ok {
		return 0
	}
	r, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0
	}
	return r
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(outlineColor)
	screen.DrawImage(o.pixel, op)
}
