package sand

import "falling-sand/internal/core"

// Step advances g by one tick.
//
// Rows are scanned from the bottom up and each row from left to right. Moves
// are applied in place, so a cell sees every change already made this tick:
// a grain that falls into an already-visited row is not revisited, while
// material moved into a row that is still ahead of the scan can be evaluated
// again in the same tick.
func Step(g *Grid, rules *RuleTable, src core.Source) {
	w, h := g.Width(), g.Height()
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			rules.apply(g, x, y, src)
		}
	}
}
