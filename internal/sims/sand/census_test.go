package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCensus(t *testing.T) {
	g, _ := NewGrid(4, 2)
	g.Set(0, 0, Sand)
	g.Set(1, 0, Sand)
	g.Set(2, 1, Fire)

	c := TakeCensus(g)
	assert.Equal(t, 2, c.Count(Sand))
	assert.Equal(t, 1, c.Count(Fire))
	assert.Equal(t, 5, c.Count(Empty))
	assert.Equal(t, 0, c.Count(Water))
	assert.Equal(t, 8, c.Total())
	assert.Equal(t, 3, c.Distinct())
	assert.Equal(t, "empty=5 sand=2 fire=1", c.String())

	var zero Census
	assert.Equal(t, 0, zero.Count(Sand))
	assert.Equal(t, 0, zero.Distinct())
	assert.Equal(t, "", zero.String())
}
