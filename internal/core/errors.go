package core

import "errors"

var (
	// ErrInvalidSize indicates a grid with zero or negative dimensions.
	ErrInvalidSize = errors.New("core: grid dimensions must be positive")

	// ErrUnknownSim is returned when a registry lookup misses.
	ErrUnknownSim = errors.New("core: unknown simulation")
)
