package app

import "github.com/spf13/pflag"

// Options holds the host settings shared by the GUI and terminal front ends.
type Options struct {
	Scale int
	TPS   int
	Panel int
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Scale: 3, TPS: 60, Panel: 220}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.IntVar(&o.Panel, "panel", o.Panel, "HUD panel width in pixels (0 hides it)")
}

// Normalize replaces non-positive values with defaults.
func (o *Options) Normalize() {
	def := NewOptions()
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.TPS <= 0 {
		o.TPS = def.TPS
	}
	if o.Panel < 0 {
		o.Panel = 0
	}
}

// ToCell converts a screen position into grid coordinates.
func ToCell(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ToolForKey maps the digit keys 1..n onto a toolbox's tool list.
func ToolForKey(tools []string, digit int) (string, bool) {
	if digit < 1 || digit > len(tools) {
		return "", false
	}
	return tools[digit-1], true
}
