package ui

import (
	"math"
	"strconv"
	"strings"

	"falling-sand/internal/core"
)

// Title returns the panel heading for sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// ToolLine describes the selected tool and the digit keys that select the
// others, e.g. "Tool: sand [1-5]".
func ToolLine(tb core.Toolbox) string {
	line := "Tool: " + tb.Tool()
	if n := len(tb.Tools()); n > 0 {
		line += " [1-" + strconv.Itoa(min(n, 9)) + "]"
	}
	return line
}

// FormatValue renders a parameter value with a precision matched to the
// control's step.
func FormatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Nudge returns the value one step from current in direction, clamped to the
// control's bounds. ok is false when the value would not change.
func Nudge(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	} else if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// BrushOutline returns the grid-space square a brush of radius r covers at
// (x, y), clipped to a w*h grid. ok is false when nothing is visible.
func BrushOutline(x, y, r, w, h int) (x0, y0, x1, y1 int, ok bool) {
	if r < 0 {
		return 0, 0, 0, 0, false
	}
	r = min(r, max(w, h))
	x0, x1 = max(x-r, 0), min(x+r, w-1)
	y0, y1 = max(y-r, 0), min(y+r, h-1)
	if x0 > x1 || y0 > y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
