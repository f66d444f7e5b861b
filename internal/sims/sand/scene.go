package sand

import (
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
)

// Scene lays out the initial contents of a freshly cleared grid.
type Scene func(g *Grid, seed int64)

var scenes = map[string]Scene{
	"empty": func(*Grid, int64) {},
	"floor": floorScene,
	"basin": basinScene,
	"dunes": dunesScene,
}

// SceneNames lists the available scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyScene clears g and builds the named scene into it.
func ApplyScene(name string, g *Grid, seed int64) error {
	scene, ok := scenes[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	g.Clear()
	scene(g, seed)
	return nil
}

// floorScene lays Stone along the bottom row.
func floorScene(g *Grid, _ int64) {
	y := g.Height() - 1
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, Stone)
	}
}

// BasinBounds returns the walls and rim of the basin scene for a w×h grid:
// Stone walls at columns left and right from row rim down to the floor.
func BasinBounds(w, h int) (left, right, rim int) {
	return w / 4, w - 1 - w/4, h / 2
}

// basinScene builds a U-shaped Stone basin open at the top.
func basinScene(g *Grid, _ int64) {
	w, h := g.Width(), g.Height()
	left, right, rim := BasinBounds(w, h)
	for y := rim; y < h; y++ {
		g.Set(left, y, Stone)
		g.Set(right, y, Stone)
	}
	for x := left; x <= right; x++ {
		g.Set(x, h-1, Stone)
	}
}

// dunesScene fills the lower part of the grid with rolling Stone terrain.
func dunesScene(g *Grid, seed int64) {
	w, h := g.Width(), g.Height()
	noise := perlin.NewPerlin(2, 2, 3, seed)
	base := h / 5
	amp := float64(h) / 6
	for x := 0; x < w; x++ {
		n := noise.Noise1D(float64(x) / float64(w) * 4)
		top := base + int(n*amp)
		if top < 1 {
			top = 1
		}
		if top > h-1 {
			top = h - 1
		}
		for y := h - top; y < h; y++ {
			g.Set(x, y, Stone)
		}
	}
}
