package sand

import (
	"fmt"
	"math"

	"falling-sand/internal/core"
)

// Stroke is one stochastic stamp of material over the square
// [X-Radius, X+Radius] × [Y-Radius, Y+Radius].
type Stroke struct {
	X, Y        int
	Radius      int
	Material    Material
	Probability float64
}

// Paint applies s to g. Each in-bounds cell of the square is independently
// overwritten with probability s.Probability (clamped to [0, 1]); painting
// Empty erases. Cells outside the grid are skipped. It returns how many
// cells were written.
func Paint(g *Grid, rules *RuleTable, s Stroke, src core.Source) (int, error) {
	if !rules.Known(s.Material) {
		return 0, fmt.Errorf("paint %s: %w", s.Material, ErrUnknownMaterial)
	}
	if s.Radius < 0 {
		return 0, fmt.Errorf("%w: radius %d", ErrInvalidBrush, s.Radius)
	}

	x0, x1 := clampSpan(s.X, s.Radius, g.Width())
	y0, y1 := clampSpan(s.Y, s.Radius, g.Height())
	painted := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !core.Chance(src, s.Probability) {
				continue
			}
			g.Set(x, y, s.Material)
			painted++
		}
	}
	return painted, nil
}

// clampSpan returns the in-range part of [c-r, c+r] for an axis of length n.
// An empty span comes back as lo > hi.
func clampSpan(c, r, n int) (lo, hi int) {
	// r is non-negative, so a wrapped sum lands on the wrong side of c.
	lo, hi = c-r, c+r
	if lo > c {
		lo = math.MinInt
	}
	if hi < c {
		hi = math.MaxInt
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
