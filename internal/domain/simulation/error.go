package simulation

import "errors"

var (
	ErrInvalidKind        = errors.New("invalid simulation kind")
	ErrSimulationNotFound = errors.New("simulation not found")
)
