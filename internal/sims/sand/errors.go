package sand

import "errors"

var (
	// ErrUnknownMaterial is returned when a material tag or name is not known
	// to the engine.
	ErrUnknownMaterial = errors.New("sand: unknown material")

	// ErrInvalidBrush indicates a stroke with a negative radius.
	ErrInvalidBrush = errors.New("sand: invalid brush")

	// ErrUnknownScene is returned for scene names with no builder.
	ErrUnknownScene = errors.New("sand: unknown scene")

	// ErrInvalidRule is returned when a rule would make Empty or Stone active.
	ErrInvalidRule = errors.New("sand: invalid rule")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("sand: invalid config")
)
