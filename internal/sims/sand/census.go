package sand

import (
	"strconv"
	"strings"

	"github.com/kamstrup/intmap"
)

// Census is a per-material histogram of a grid.
type Census struct {
	counts *intmap.Map[Material, int]
	total  int
}

// TakeCensus counts every material present in g.
func TakeCensus(g *Grid) Census {
	c := Census{counts: intmap.New[Material, int](int(numMaterials))}
	for _, v := range g.Cells() {
		m := Material(v)
		n, _ := c.counts.Get(m)
		c.counts.Put(m, n+1)
	}
	c.total = len(g.Cells())
	return c
}

// Count returns the number of cells holding m.
func (c Census) Count(m Material) int {
	if c.counts == nil {
		return 0
	}
	n, _ := c.counts.Get(m)
	return n
}

// Total returns the number of cells counted.
func (c Census) Total() int { return c.total }

// Distinct returns how many different materials were seen.
func (c Census) Distinct() int {
	if c.counts == nil {
		return 0
	}
	return c.counts.Len()
}

// String lists non-zero counts in tag order, e.g. "sand=12 stone=200".
func (c Census) String() string {
	var b strings.Builder
	for tag := 0; tag < MaxMaterials; tag++ {
		n := c.Count(Material(tag))
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Material(tag).String())
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
