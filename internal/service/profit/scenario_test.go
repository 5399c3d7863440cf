package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
)

func TestAnalysisRequest_Resolve(t *testing.T) {
	t.Run("defaults when omitted", func(t *testing.T) {
		req := AnalysisRequest{CapacityKW: 100, TotalInvestment: 150_000_000}
		assert.Equal(t, DefaultAssumptions(), req.Resolve(DefaultAssumptions()))
	})

	t.Run("overrides provided fields", func(t *testing.T) {
		smp := 150.0
		zero := 0.0
		maintenance := int64(1_000_000)
		req := AnalysisRequest{
			SMPPrice:        &smp,
			DegradationRate: &zero,
			MaintenanceCost: &maintenance,
		}

		a := req.Resolve(DefaultAssumptions())

		assert.Equal(t, 150.0, a.SMPPrice)
		assert.Equal(t, 0.0, a.DegradationRate)
		assert.Equal(t, int64(1_000_000), a.MaintenanceCost)
		assert.Equal(t, 40000.0, a.RECPrice)
		assert.Equal(t, int64(300_000), a.MonitoringCost)
	})
}

func TestBuildScenarios(t *testing.T) {
	a := DefaultAssumptions()
	inputs := BuildScenarios(100, 150_000_000, a, "")
	require.Len(t, inputs, 4)

	self, bank, gov, fact := inputs[0], inputs[1], inputs[2], inputs[3]

	assert.Equal(t, profit.FinancingSelfFunding, self.FinancingType)
	assert.Equal(t, 1.0, self.SelfFundingRate)
	assert.Zero(t, self.LoanAmount)

	assert.Equal(t, profit.FinancingBankLoan, bank.FinancingType)
	assert.Equal(t, a.BankInterestRate, bank.InterestRate)
	assert.Equal(t, 10, bank.LoanPeriod)
	assert.Equal(t, 0, bank.GracePeriod)
	assert.Equal(t, int64(105_000_000), bank.LoanAmount)

	assert.Equal(t, profit.FinancingGovernmentLoan, gov.FinancingType)
	assert.Equal(t, 1.75, gov.InterestRate)
	assert.Equal(t, 11, gov.LoanPeriod)
	assert.Equal(t, 1, gov.GracePeriod)

	assert.Equal(t, profit.FinancingFactoring, fact.FinancingType)
	assert.Equal(t, 0.05, fact.GuaranteeFeeRate)
	assert.Equal(t, a.FactoringFeeRate, fact.FactoringFeeRate)
	assert.Equal(t, 5, fact.LoanPeriod)
	assert.Equal(t, int64(150_000_000), fact.LoanAmount)

	for _, in := range inputs {
		assert.Equal(t, profit.AmortizationEqualPrincipal, in.AmortizationMethod)
		assert.NoError(t, in.Validate())
	}
}

func TestCompare(t *testing.T) {
	cmp := Compare(allScenarios())

	require.NotNil(t, cmp.SelfFunding)
	require.NotNil(t, cmp.BankLoan)
	require.NotNil(t, cmp.GovernmentLoan)
	require.NotNil(t, cmp.Factoring)

	var best *profit.AnalysisResult
	for _, r := range cmp.All() {
		if best == nil || r.TotalProfit20y > best.TotalProfit20y {
			best = r
		}
	}
	assert.Equal(t, best.FinancingType, cmp.BestScenario)

	// 자기자본은 금융비용이 없어 20년 총수익이 가장 큼
	assert.Equal(t, profit.FinancingSelfFunding, cmp.BestScenario)
}

func TestAssumptionsFromConfig_MatchesDefaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultAssumptions(), AssumptionsFromConfig(cfg.Simulation))
}
