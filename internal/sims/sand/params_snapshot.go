package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// Parameters publishes the engine's current tunables.
func (e *Engine) Parameters() core.ParameterSnapshot {
	cfg := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", e.grid.Width()),
				intParam("h", "Height", e.grid.Height()),
				int64Param("seed", "Seed", e.seed),
				stringParam("scene", "Scene", cfg.Scene),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("material", "Material", e.material.String()),
				intParam("brush_radius", "Brush radius", cfg.Brush.Radius),
				floatParam("brush_probability", "Brush fill", cfg.Brush.Probability),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("fire_decay", "Fire decay", e.rules.Rule(Fire).Decay),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
		{Key: "brush_probability", Label: "Brush fill", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "fire_decay", Label: "Fire decay", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, clamping to its control bounds.
func (e *Engine) SetIntParameter(key string, value int) bool {
	ctrl, ok := e.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	switch key {
	case "brush_radius":
		e.cfg.Brush.Radius = v
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, clamping to its control bounds.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := e.control(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	v := ctrl.Clamp(value)
	switch key {
	case "brush_probability":
		e.cfg.Brush.Probability = v
	case "fire_decay":
		e.cfg.Params.FireDecay = v
		e.rules.SetDecay(Fire, v)
	default:
		return false
	}
	return true
}

func (e *Engine) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range e.ParameterControls() {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
