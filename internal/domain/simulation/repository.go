package simulation

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for simulation persistence
type Repository interface {
	// Save stores a simulation run
	Save(ctx context.Context, sim *Simulation) error

	// GetByID returns a simulation by id
	GetByID(ctx context.Context, id uuid.UUID) (*Simulation, error)

	// ListRecent returns the latest simulations, newest first
	ListRecent(ctx context.Context, filter ListFilter) ([]Simulation, error)
}
