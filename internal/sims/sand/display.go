package sand

import (
	"image"
	"image/color"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
)

// flickerSpan is the range of the random green offset added to flickering
// materials.
const flickerSpan = 100

var defaultPalette = [numMaterials]color.RGBA{
	Empty: {R: 17, G: 17, B: 24, A: 255},
	Sand:  {R: 222, G: 190, B: 110, A: 255},
	Water: {R: 40, G: 110, B: 230, A: 255},
	Stone: {R: 128, G: 128, B: 136, A: 255},
	Fire:  {R: 255, G: 70, B: 20, A: 255},
}

// Renderer turns a grid snapshot into RGBA pixels. It only reads the cells
// it is given. Flicker noise comes from the renderer's own source so drawing
// never perturbs the simulation's random sequence.
type Renderer struct {
	palette [MaxMaterials]color.RGBA
	flicker MaterialSet
	src     *core.RNG
}

// NewRenderer returns a renderer with the default palette; Fire flickers.
func NewRenderer(seed int64) *Renderer {
	r := &Renderer{flicker: SetOf(Fire), src: core.NewRNG(seed)}
	copy(r.palette[:], defaultPalette[:])
	return r
}

// Reseed restarts the flicker sequence.
func (r *Renderer) Reseed(seed int64) { r.src.Reseed(seed) }

// SetColor assigns the base colour of m. When flicker is set the green
// channel is randomised upward from the base each frame.
func (r *Renderer) SetColor(m Material, c color.RGBA, flicker bool) {
	if m >= MaxMaterials {
		return
	}
	r.palette[m] = c
	if flicker {
		r.flicker |= SetOf(m)
	} else {
		r.flicker &^= SetOf(m)
	}
}

// Color returns the base colour of m.
func (r *Renderer) Color(m Material) color.RGBA {
	if m >= MaxMaterials {
		return color.RGBA{}
	}
	return r.palette[m]
}

// Palette returns a copy of the base colours indexed by material tag.
func (r *Renderer) Palette() []color.RGBA {
	out := make([]color.RGBA, MaxMaterials)
	copy(out, r.palette[:])
	return out
}

// FillRGBA writes one pixel per cell into buf (4 bytes each, row-major).
func (r *Renderer) FillRGBA(buf []byte, cells []uint8) {
	render.FillPaletteRGBA(buf, cells, r.palette[:])
	if r.flicker == 0 {
		return
	}
	for i, c := range cells {
		base := i*4 + 1
		if base >= len(buf) {
			return
		}
		if !r.flicker.Has(Material(c)) {
			continue
		}
		g := int(r.palette[c].G) + r.src.IntN(flickerSpan)
		if g > 255 {
			g = 255
		}
		buf[base] = uint8(g)
	}
}

// Render draws g into dst, allocating a new image when dst is nil or has the
// wrong size, and returns the image written.
func (r *Renderer) Render(g *Grid, dst *image.RGBA) *image.RGBA {
	w, h := g.Width(), g.Height()
	if dst == nil || dst.Rect.Dx() != w || dst.Rect.Dy() != h || dst.Stride != 4*w {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.FillRGBA(dst.Pix, g.Cells())
	return dst
}
