//go:build ebiten

package render

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a simulation frame into a single RGBA image and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	On  color.Color
	Off color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		On:  color.White,
		Off: color.Black,
	}
}

// Blit fills the pixel buffer from sim and draws it onto dst. Sims that
// colour their own pixels are asked to; anything else is drawn in two tones.
// The painter reallocates when the sim was resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		on, off := gp.On, gp.Off
		*gp = *NewGridPainter(size.W, size.H)
		gp.On, gp.Off = on, off
	}
	if filler, ok := sim.(core.PixelFiller); ok {
		filler.FillRGBA(gp.buf)
	} else {
		FillBinaryRGBA(gp.buf, sim.Cells(), gp.On, gp.Off)
	}
	gp.img.WritePixels(gp.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
