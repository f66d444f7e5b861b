package sand

import (
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererUsesPalette(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)
	for x, m := range Materials() {
		g.Set(x, 0, m)
	}
	before := slices.Clone(g.Cells())

	r := NewRenderer(7)
	img := r.Render(g, nil)
	require.Equal(t, 5, img.Rect.Dx())
	require.Equal(t, 1, img.Rect.Dy())

	for x, m := range []Material{Empty, Sand, Water, Stone} {
		assert.Equalf(t, r.Color(m), img.RGBAAt(x, 0), "%s colour", m)
	}

	base := r.Color(Fire)
	for i := 0; i < 50; i++ {
		img = r.Render(g, img)
		px := img.RGBAAt(4, 0)
		assert.Equal(t, base.R, px.R)
		assert.Equal(t, base.B, px.B)
		assert.GreaterOrEqual(t, int(px.G), int(base.G))
		assert.Less(t, int(px.G), int(base.G)+flickerSpan)
	}

	assert.Equal(t, before, g.Cells(), "rendering must not touch the grid")
}

func TestRendererReusesMatchingImage(t *testing.T) {
	g, _ := NewGrid(4, 3)
	r := NewRenderer(1)
	first := r.Render(g, nil)
	assert.Same(t, first, r.Render(g, first))

	other, _ := NewGrid(2, 2)
	assert.NotSame(t, first, r.Render(other, first))
}

func TestRendererFlickerToggle(t *testing.T) {
	r := NewRenderer(3)
	calm := color.RGBA{R: 255, G: 70, B: 20, A: 255}
	r.SetColor(Fire, calm, false)

	buf := make([]byte, 4)
	for i := 0; i < 10; i++ {
		r.FillRGBA(buf, []uint8{uint8(Fire)})
		assert.Equal(t, []byte{255, 70, 20, 255}, buf)
	}
	assert.Len(t, r.Palette(), MaxMaterials)
}
