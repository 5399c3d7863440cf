package profit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
)

func ptr[T any](v T) *T { return &v }

type stubCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

type stubRepo struct {
	mu      sync.Mutex
	saved   []*simulation.Simulation
	saveErr error
}

func (r *stubRepo) Save(_ context.Context, sim *simulation.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, sim)
	return nil
}

func (r *stubRepo) GetByID(context.Context, uuid.UUID) (*simulation.Simulation, error) {
	return nil, simulation.ErrSimulationNotFound
}

func (r *stubRepo) ListRecent(context.Context, simulation.ListFilter) ([]simulation.Simulation, error) {
	return nil, nil
}

func TestService_Analyze(t *testing.T) {
	ctx := context.Background()
	req := AnalysisRequest{CapacityKW: 100, TotalInvestment: 150_000_000}

	t.Run("computes all scenarios without cache or repo", func(t *testing.T) {
		svc := NewService(DefaultAssumptions(), nil, nil, time.Minute)

		out, err := svc.Analyze(ctx, req)
		require.NoError(t, err)

		assert.False(t, out.Cached)
		assert.Nil(t, out.SimulationID)
		for _, r := range out.All() {
			require.NotNil(t, r)
			assert.Len(t, r.YearlyData, profit.ProjectionYears)
		}
		assert.Equal(t, 8, out.SelfFunding.PaybackPeriod)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		cache := newStubCache()
		repo := &stubRepo{}
		svc := NewService(DefaultAssumptions(), cache, repo, time.Minute)

		first, err := svc.Analyze(ctx, req)
		require.NoError(t, err)
		second, err := svc.Analyze(ctx, req)
		require.NoError(t, err)

		assert.False(t, first.Cached)
		assert.True(t, second.Cached)
		assert.Len(t, cache.data, 1)
		assert.Equal(t, first.SelfFunding.TotalProfit20y, second.SelfFunding.TotalProfit20y)
		assert.Equal(t, first.BestScenario, second.BestScenario)

		require.Len(t, repo.saved, 2)
		require.NotNil(t, first.SimulationID)
		assert.Equal(t, repo.saved[0].ID, *first.SimulationID)
		assert.Equal(t, simulation.KindProfitAnalysis, repo.saved[0].Kind)
	})

	t.Run("different assumptions use different cache keys", func(t *testing.T) {
		cache := newStubCache()
		svc := NewService(DefaultAssumptions(), cache, nil, time.Minute)

		smp := 150.0
		other := req
		other.SMPPrice = &smp

		_, err := svc.Analyze(ctx, req)
		require.NoError(t, err)
		_, err = svc.Analyze(ctx, other)
		require.NoError(t, err)

		assert.Len(t, cache.data, 2)
	})

	t.Run("cache and repo failures do not fail the calculation", func(t *testing.T) {
		cache := newStubCache()
		cache.getErr = errors.New("connection refused")
		repo := &stubRepo{saveErr: errors.New("db down")}
		svc := NewService(DefaultAssumptions(), cache, repo, time.Minute)

		out, err := svc.Analyze(ctx, req)
		require.NoError(t, err)

		assert.False(t, out.Cached)
		assert.Nil(t, out.SimulationID)
		assert.NotNil(t, out.Factoring)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := NewService(DefaultAssumptions(), nil, nil, time.Minute)

		tests := []struct {
			name string
			req  AnalysisRequest
			want error
		}{
			{"zero capacity", AnalysisRequest{TotalInvestment: 1}, profit.ErrInvalidCapacity},
			{"negative capacity", AnalysisRequest{CapacityKW: -1, TotalInvestment: 1}, profit.ErrInvalidCapacity},
			{"zero investment", AnalysisRequest{CapacityKW: 10}, profit.ErrInvalidInvestment},
			{"unknown amortization", AnalysisRequest{CapacityKW: 10, TotalInvestment: 1, AmortizationMethod: "BALLOON"}, profit.ErrInvalidAmortization},
			{"capacity above cap", AnalysisRequest{CapacityKW: 1e15, TotalInvestment: 150_000_000}, profit.ErrInvalidCapacity},
			{"investment above cap", AnalysisRequest{CapacityKW: 10, TotalInvestment: profit.MaxAmountWon + 1}, profit.ErrInvalidInvestment},
			{"smp override above cap", AnalysisRequest{CapacityKW: 10, TotalInvestment: 1, SMPPrice: ptr(1e12)}, profit.ErrInvalidSMPPrice},
			{"bank rate override above cap", AnalysisRequest{CapacityKW: 10, TotalInvestment: 1, BankInterestRate: ptr(500.0)}, profit.ErrInvalidInterestRate},
			{"degradation below float resolution", AnalysisRequest{CapacityKW: 10, TotalInvestment: 1, DegradationRate: ptr(1e-17)}, profit.ErrInvalidDegradation},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Analyze(ctx, tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestService_AnalyzeConcurrent(t *testing.T) {
	svc := NewService(DefaultAssumptions(), newStubCache(), nil, time.Minute)
	req := AnalysisRequest{CapacityKW: 50, TotalInvestment: 80_000_000}

	const n = 8
	results := make([]int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := svc.Analyze(context.Background(), req)
			if assert.NoError(t, err) {
				results[i] = out.BankLoan.TotalProfit20y
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results[1:] {
		assert.Equal(t, results[0], v)
	}
}
