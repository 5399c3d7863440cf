package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
)

// simulationSchema 시뮬레이션 이력 테이블
const simulationSchema = `
	CREATE SCHEMA IF NOT EXISTS simulation;

	CREATE TABLE IF NOT EXISTS simulation.runs (
		id         UUID PRIMARY KEY,
		kind       TEXT        NOT NULL,
		input      JSONB       NOT NULL,
		result     JSONB       NOT NULL,
		created_ts TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS runs_kind_created_idx
		ON simulation.runs (kind, created_ts DESC);
`

// SimulationRepository implements simulation.Repository using PostgreSQL
type SimulationRepository struct {
	pool *Pool
}

// NewSimulationRepository creates a new SimulationRepository
func NewSimulationRepository(pool *Pool) *SimulationRepository {
	return &SimulationRepository{pool: pool}
}

// EnsureSchema creates the simulation schema if missing
func (r *SimulationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, simulationSchema); err != nil {
		return fmt.Errorf("ensure simulation schema: %w", err)
	}
	return nil
}

// Save stores a simulation run
func (r *SimulationRepository) Save(ctx context.Context, sim *simulation.Simulation) error {
	query := `
		INSERT INTO simulation.runs (id, kind, input, result, created_ts)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		sim.ID,
		string(sim.Kind),
		[]byte(sim.Input),
		[]byte(sim.Result),
		sim.CreatedTS,
	)
	if err != nil {
		return fmt.Errorf("save simulation: %w", err)
	}

	return nil
}

// GetByID returns a simulation by id
func (r *SimulationRepository) GetByID(ctx context.Context, id uuid.UUID) (*simulation.Simulation, error) {
	query := `
		SELECT id, kind, input, result, created_ts
		FROM simulation.runs
		WHERE id = $1
	`

	sim, err := scanSimulation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simulation.ErrSimulationNotFound
		}
		return nil, fmt.Errorf("get simulation: %w", err)
	}

	return sim, nil
}

// ListRecent returns the latest simulations, newest first
func (r *SimulationRepository) ListRecent(ctx context.Context, filter simulation.ListFilter) ([]simulation.Simulation, error) {
	query := `
		SELECT id, kind, input, result, created_ts
		FROM simulation.runs
		WHERE ($1::text IS NULL OR kind = $1)
		ORDER BY created_ts DESC
		LIMIT $2
	`

	var kind *string
	if filter.Kind != nil {
		k := string(*filter.Kind)
		kind = &k
	}

	rows, err := r.pool.Query(ctx, query, kind, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("query simulations: %w", err)
	}
	defer rows.Close()

	sims := []simulation.Simulation{}
	for rows.Next() {
		sim, err := scanSimulation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan simulation: %w", err)
		}
		sims = append(sims, *sim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulations: %w", err)
	}

	return sims, nil
}

func scanSimulation(row pgx.Row) (*simulation.Simulation, error) {
	var (
		sim           simulation.Simulation
		kind          string
		input, result []byte
	)

	if err := row.Scan(&sim.ID, &kind, &input, &result, &sim.CreatedTS); err != nil {
		return nil, err
	}

	sim.Kind = simulation.Kind(kind)
	sim.Input = input
	sim.Result = result
	return &sim, nil
}
