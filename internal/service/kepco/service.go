package kepco

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
)

// Outcome 시설부담금 계산 결과 + 저장 ID
type Outcome struct {
	*kepco.ChargeResult
	SimulationID *uuid.UUID `json:"simulationId,omitempty"`
}

// Service 한전 시설부담금 서비스
type Service struct {
	calc *Calculator
	repo simulation.Repository // optional
}

// NewService creates a new KEPCO charge service
func NewService(calc *Calculator, repo simulation.Repository) *Service {
	return &Service{calc: calc, repo: repo}
}

// Tariff returns the active tariff table
func (s *Service) Tariff() *kepco.Tariff {
	return s.calc.Tariff()
}

// Calculate 입력 검증 후 시설부담금 계산
func (s *Service) Calculate(ctx context.Context, req kepco.ChargeRequest) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.calc.CalculateKepcoCharge(req.CapacityKW, req.VoltageType, req.SupplyType, req.DistanceCharge, req.PaymentType)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Float64("capacity_kw", req.CapacityKW).
		Str("voltage", string(req.VoltageType)).
		Str("supply", string(req.SupplyType)).
		Str("payment", string(req.PaymentType)).
		Int64("total_charge", result.TotalCharge).
		Msg("KEPCO charge calculated")

	outcome := &Outcome{ChargeResult: result}

	if s.repo != nil {
		sim, err := simulation.New(simulation.KindKepcoCharge, req, result)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to build simulation record")
			return outcome, nil
		}
		if err := s.repo.Save(ctx, sim); err != nil {
			log.Warn().Err(err).Msg("Failed to save KEPCO charge simulation")
			return outcome, nil
		}
		outcome.SimulationID = &sim.ID
	}

	return outcome, nil
}
