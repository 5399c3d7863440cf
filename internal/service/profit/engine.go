package profit

import (
	"math"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DaysPerYear 연간 발전일수
	DaysPerYear = 365

	// RECUnitKWh REC 1개당 발전량 (kWh) - REC 단가를 kWh 단가로 환산
	RECUnitKWh = 1000
)

// =============================================================================
// Projection
// =============================================================================

// CalculateProfitAnalysis 20년 현금흐름 분석
// 입력값 검증은 호출자 책임 (용량, 투자비 > 0)
func CalculateProfitAnalysis(in profit.AnalysisInput) *profit.AnalysisResult {
	debt := buildDebtSchedule(in)

	initialEquity := in.InitialEquity()
	cumulative := -initialEquity
	payback := profit.NotRecovered

	yearly := make([]profit.YearlyDataItem, 0, profit.ProjectionYears)
	var totalProfit int64

	baseEnergy := in.CapacityKW * in.PeakHours * DaysPerYear
	operatingCost := in.MaintenanceCost + in.MonitoringCost

	for year := 1; year <= profit.ProjectionYears; year++ {
		energy := baseEnergy * math.Pow(1-in.DegradationRate, float64(year-1))

		smpRevenue := profit.RoundWon(energy * in.SMPPrice)
		recRevenue := profit.RoundWon(energy * in.RECWeight * in.RECPrice / RECUnitKWh)
		totalRevenue := smpRevenue + recRevenue

		d := debt[year-1]
		net := totalRevenue - operatingCost - (d.principal + d.interest + d.fee)
		cumulative += net
		totalProfit += net

		if payback == profit.NotRecovered && cumulative >= 0 {
			payback = year
		}

		yearly = append(yearly, profit.YearlyDataItem{
			Year:          year,
			EnergyKWh:     energy,
			SMPRevenue:    smpRevenue,
			RECRevenue:    recRevenue,
			TotalRevenue:  totalRevenue,
			OperatingCost: operatingCost,
			LoanPrincipal: d.principal,
			LoanInterest:  d.interest,
			FinancingFee:  d.fee,
			NetCashFlow:   net,
			CumulativeCF:  cumulative,
		})
	}

	return &profit.AnalysisResult{
		FinancingType:  in.FinancingType,
		YearlyData:     yearly,
		PaybackPeriod:  payback,
		TotalProfit20y: totalProfit,
		ROI:            float64(totalProfit) / float64(in.TotalInvestment),
		InitialEquity:  initialEquity,
	}
}
