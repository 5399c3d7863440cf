package profit

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
)

// ResultCache 계산 결과 캐시 (Redis 또는 in-memory)
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Outcome 수익성 분석 결과 + 메타데이터
type Outcome struct {
	*profit.ScenarioComparison
	SimulationID *uuid.UUID `json:"simulationId,omitempty"`
	Cached       bool       `json:"cached"`
}

// Service 수익성 시뮬레이터 서비스
// 계산 자체는 순수 함수이며, 서비스는 캐시/저장/중복 요청 병합만 담당
type Service struct {
	defaults Assumptions
	cache    ResultCache           // optional
	repo     simulation.Repository // optional
	cacheTTL time.Duration

	// 동일 요청 동시 계산 방지
	sf singleflight.Group
}

// NewService creates a new profit analysis service
// cache, repo는 nil 허용
func NewService(defaults Assumptions, cache ResultCache, repo simulation.Repository, cacheTTL time.Duration) *Service {
	return &Service{
		defaults: defaults,
		cache:    cache,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}

// Defaults returns the assumptions applied to omitted request fields
func (s *Service) Defaults() Assumptions {
	return s.defaults
}

// Analyze 4개 조달 시나리오 계산
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*Outcome, error) {
	assumptions := req.Resolve(s.defaults)
	method := req.AmortizationMethod.OrDefault()
	if err := validateRequest(req, assumptions); err != nil {
		return nil, err
	}

	key := cacheKey(req.CapacityKW, req.TotalInvestment, assumptions, method)

	outcome := &Outcome{}

	if cmp, ok := s.fromCache(ctx, key); ok {
		outcome.ScenarioComparison = cmp
		outcome.Cached = true
	} else {
		v, err, shared := s.sf.Do(key, func() (interface{}, error) {
			inputs := BuildScenarios(req.CapacityKW, req.TotalInvestment, assumptions, method)
			cmp := Compare(inputs)
			s.toCache(ctx, key, cmp)
			return cmp, nil
		})
		if err != nil {
			return nil, err
		}
		outcome.ScenarioComparison = v.(*profit.ScenarioComparison)

		log.Debug().
			Str("key", key).
			Bool("shared", shared).
			Float64("capacity_kw", req.CapacityKW).
			Int64("total_investment", req.TotalInvestment).
			Str("best", string(outcome.BestScenario)).
			Msg("Profit analysis calculated")
	}

	if id, ok := s.persist(ctx, req, outcome.ScenarioComparison); ok {
		outcome.SimulationID = &id
	}

	return outcome, nil
}

// validateRequest 경계 검증 (엔진은 검증하지 않음)
// 기본값이 적용된 4개 시나리오 입력을 모두 검증하여 금액 오버플로 범위를 차단
func validateRequest(req AnalysisRequest, a Assumptions) error {
	if !req.AmortizationMethod.IsValid() {
		return fmt.Errorf("%w: %q", profit.ErrInvalidAmortization, req.AmortizationMethod)
	}
	for _, in := range BuildScenarios(req.CapacityKW, req.TotalInvestment, a, req.AmortizationMethod) {
		if err := in.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// cacheKey 요청 지문 (xxhash)
func cacheKey(capacityKW float64, totalInvestment int64, a Assumptions, method profit.AmortizationMethod) string {
	payload, _ := json.Marshal(struct {
		CapacityKW      float64                   `json:"c"`
		TotalInvestment int64                     `json:"i"`
		Assumptions     Assumptions               `json:"a"`
		Method          profit.AmortizationMethod `json:"m"`
	}{capacityKW, totalInvestment, a, method})

	return fmt.Sprintf("profit:%016x", xxhash.Sum64(payload))
}

func (s *Service) fromCache(ctx context.Context, key string) (*profit.ScenarioComparison, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Profit cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var cmp profit.ScenarioComparison
	if err := json.Unmarshal(raw, &cmp); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding corrupt cache entry")
		return nil, false
	}
	return &cmp, true
}

func (s *Service) toCache(ctx context.Context, key string, cmp *profit.ScenarioComparison) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(cmp)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode profit analysis for cache")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Profit cache write failed")
	}
}

// persist 시뮬레이션 이력 저장 (실패해도 계산 결과는 반환)
func (s *Service) persist(ctx context.Context, req AnalysisRequest, cmp *profit.ScenarioComparison) (uuid.UUID, bool) {
	if s.repo == nil {
		return uuid.Nil, false
	}

	sim, err := simulation.New(simulation.KindProfitAnalysis, req, cmp)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to build simulation record")
		return uuid.Nil, false
	}
	if err := s.repo.Save(ctx, sim); err != nil {
		log.Warn().Err(err).Msg("Failed to save profit simulation")
		return uuid.Nil, false
	}
	return sim.ID, true
}
