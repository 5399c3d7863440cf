package profit

import (
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
)

// =============================================================================
// Fixed Scenario Parameters
// =============================================================================

const (
	// 은행 대출
	BankLoanPeriod  = 10
	BankGracePeriod = 0

	// 정책자금 융자
	GovernmentLoanRate   = 1.75
	GovernmentLoanPeriod = 11
	GovernmentGraceYears = 1

	// 팩토링
	FactoringGuaranteeFeeRate = 0.05
	FactoringLoanPeriod       = 5

	// DebtFinancedShare 은행/정책자금 대출 비율 (나머지는 자기자본)
	DebtFinancedShare = 0.7
)

// =============================================================================
// Assumptions
// =============================================================================

// Assumptions 시뮬레이션 기본 가정값
type Assumptions struct {
	SMPPrice         float64 `json:"smpPrice"`
	RECPrice         float64 `json:"recPrice"`
	RECWeight        float64 `json:"recWeight"`
	PeakHours        float64 `json:"peakHours"`
	DegradationRate  float64 `json:"degradationRate"`
	MaintenanceCost  int64   `json:"maintenanceCost"`
	MonitoringCost   int64   `json:"monitoringCost"`
	BankInterestRate float64 `json:"bankInterestRate"`
	FactoringFeeRate float64 `json:"factoringFeeRate"`
}

// DefaultAssumptions 요청에 값이 없을 때 사용하는 기본값
func DefaultAssumptions() Assumptions {
	return Assumptions{
		SMPPrice:         120,
		RECPrice:         40000,
		RECWeight:        1.0,
		PeakHours:        3.7,
		DegradationRate:  0.008,
		MaintenanceCost:  500000,
		MonitoringCost:   300000,
		BankInterestRate: 5.5,
		FactoringFeeRate: 0.08,
	}
}

// AssumptionsFromConfig SIM_* 환경 설정값을 기본 가정값으로 변환
func AssumptionsFromConfig(sc config.SimulationConfig) Assumptions {
	return Assumptions{
		SMPPrice:         sc.SMPPrice,
		RECPrice:         sc.RECPrice,
		RECWeight:        sc.RECWeight,
		PeakHours:        sc.PeakHours,
		DegradationRate:  sc.DegradationRate,
		MaintenanceCost:  sc.MaintenanceCost,
		MonitoringCost:   sc.MonitoringCost,
		BankInterestRate: sc.BankInterestRate,
		FactoringFeeRate: sc.FactoringFeeRate,
	}
}

// AnalysisRequest 수익성 시뮬레이터 요청 본문
// capacityKw, totalInvestment 외에는 모두 선택값
type AnalysisRequest struct {
	CapacityKW         float64                   `json:"capacityKw"`
	TotalInvestment    int64                     `json:"totalInvestment"`
	SMPPrice           *float64                  `json:"smpPrice,omitempty"`
	RECPrice           *float64                  `json:"recPrice,omitempty"`
	RECWeight          *float64                  `json:"recWeight,omitempty"`
	PeakHours          *float64                  `json:"peakHours,omitempty"`
	DegradationRate    *float64                  `json:"degradationRate,omitempty"`
	MaintenanceCost    *int64                    `json:"maintenanceCost,omitempty"`
	MonitoringCost     *int64                    `json:"monitoringCost,omitempty"`
	BankInterestRate   *float64                  `json:"bankInterestRate,omitempty"`
	FactoringFeeRate   *float64                  `json:"factoringFeeRate,omitempty"`
	AmortizationMethod profit.AmortizationMethod `json:"amortizationMethod,omitempty"`
}

// Resolve 요청값으로 기본값을 덮어쓴 가정값 반환
func (r AnalysisRequest) Resolve(defaults Assumptions) Assumptions {
	a := defaults
	overrideFloat(&a.SMPPrice, r.SMPPrice)
	overrideFloat(&a.RECPrice, r.RECPrice)
	overrideFloat(&a.RECWeight, r.RECWeight)
	overrideFloat(&a.PeakHours, r.PeakHours)
	overrideFloat(&a.DegradationRate, r.DegradationRate)
	overrideFloat(&a.BankInterestRate, r.BankInterestRate)
	overrideFloat(&a.FactoringFeeRate, r.FactoringFeeRate)
	if r.MaintenanceCost != nil {
		a.MaintenanceCost = *r.MaintenanceCost
	}
	if r.MonitoringCost != nil {
		a.MonitoringCost = *r.MonitoringCost
	}
	return a
}

func overrideFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// =============================================================================
// Scenario Builder
// =============================================================================

// BuildScenarios 4개 조달 방식별 분석 입력 생성
// 순서: 자기자본, 은행 대출, 정책자금, 팩토링
func BuildScenarios(capacityKW float64, totalInvestment int64, a Assumptions, method profit.AmortizationMethod) []profit.AnalysisInput {
	base := profit.AnalysisInput{
		CapacityKW:         capacityKW,
		TotalInvestment:    totalInvestment,
		PeakHours:          a.PeakHours,
		DegradationRate:    a.DegradationRate,
		SMPPrice:           a.SMPPrice,
		RECPrice:           a.RECPrice,
		RECWeight:          a.RECWeight,
		MaintenanceCost:    a.MaintenanceCost,
		MonitoringCost:     a.MonitoringCost,
		AmortizationMethod: method.OrDefault(),
	}

	debtLoan := profit.RoundWon(float64(totalInvestment) * DebtFinancedShare)

	self := base
	self.FinancingType = profit.FinancingSelfFunding
	self.SelfFundingRate = 1

	bank := base
	bank.FinancingType = profit.FinancingBankLoan
	bank.SelfFundingRate = 1 - DebtFinancedShare
	bank.LoanAmount = debtLoan
	bank.InterestRate = a.BankInterestRate
	bank.LoanPeriod = BankLoanPeriod
	bank.GracePeriod = BankGracePeriod

	gov := base
	gov.FinancingType = profit.FinancingGovernmentLoan
	gov.SelfFundingRate = 1 - DebtFinancedShare
	gov.LoanAmount = debtLoan
	gov.InterestRate = GovernmentLoanRate
	gov.LoanPeriod = GovernmentLoanPeriod
	gov.GracePeriod = GovernmentGraceYears

	// 팩토링은 투자비 전액 조달
	fact := base
	fact.FinancingType = profit.FinancingFactoring
	fact.SelfFundingRate = 0
	fact.LoanAmount = totalInvestment
	fact.InterestRate = a.BankInterestRate
	fact.LoanPeriod = FactoringLoanPeriod
	fact.GuaranteeFeeRate = FactoringGuaranteeFeeRate
	fact.FactoringFeeRate = a.FactoringFeeRate

	return []profit.AnalysisInput{self, bank, gov, fact}
}

// Compare 4개 시나리오를 계산하고 20년 총수익이 가장 큰 방식을 선택
// 동률이면 앞선 순서(자기자본 → 팩토링)를 우선
func Compare(inputs []profit.AnalysisInput) *profit.ScenarioComparison {
	cmp := &profit.ScenarioComparison{}

	var best *profit.AnalysisResult
	for _, in := range inputs {
		res := CalculateProfitAnalysis(in)

		switch in.FinancingType {
		case profit.FinancingSelfFunding:
			cmp.SelfFunding = res
		case profit.FinancingBankLoan:
			cmp.BankLoan = res
		case profit.FinancingGovernmentLoan:
			cmp.GovernmentLoan = res
		case profit.FinancingFactoring:
			cmp.Factoring = res
		}

		if best == nil || res.TotalProfit20y > best.TotalProfit20y {
			best = res
		}
	}

	if best != nil {
		cmp.BestScenario = best.FinancingType
	}
	return cmp
}
