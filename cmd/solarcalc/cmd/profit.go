package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	profitsvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/profit"
)

var (
	profitCapacity   float64
	profitInvestment int64
	profitMethod     string
	profitScenario   string

	// 가정값 덮어쓰기 (지정한 플래그만 적용)
	profitSMP         float64
	profitREC         float64
	profitRECWeight   float64
	profitPeakHours   float64
	profitDegradation float64
	profitMaintenance int64
	profitMonitoring  int64
	profitBankRate    float64
	profitFactoring   float64
)

// profitCmd 수익성 분석 커맨드
var profitCmd = &cobra.Command{
	Use:   "profit",
	Short: "태양광 20년 수익성 분석",
	Long: `자기자본/은행대출/정책자금/팩토링 4개 시나리오의 20년 현금흐름을 계산합니다.

Examples:
    solarcalc profit --capacity 100 --investment 150000000
    solarcalc profit --capacity 100 --investment 150000000 --method EQUAL_PAYMENT --scenario BANK_LOAN`,
	RunE: runProfit,
}

func init() {
	f := profitCmd.Flags()
	f.Float64Var(&profitCapacity, "capacity", 0, "설비 용량 (kW)")
	f.Int64Var(&profitInvestment, "investment", 0, "총 투자비 (원)")
	f.StringVar(&profitMethod, "method", "", "상환 방식 (EQUAL_PRINCIPAL | EQUAL_PAYMENT)")
	f.StringVar(&profitScenario, "scenario", "", "단일 시나리오만 출력 (SELF_FUNDING | BANK_LOAN | GOVERNMENT_LOAN | FACTORING)")

	f.Float64Var(&profitSMP, "smp", 0, "SMP 단가 (원/kWh)")
	f.Float64Var(&profitREC, "rec", 0, "REC 단가 (원/REC)")
	f.Float64Var(&profitRECWeight, "rec-weight", 0, "REC 가중치")
	f.Float64Var(&profitPeakHours, "peak-hours", 0, "일평균 발전시간")
	f.Float64Var(&profitDegradation, "degradation", 0, "연간 효율 저하율")
	f.Int64Var(&profitMaintenance, "maintenance", 0, "연간 유지보수비 (원)")
	f.Int64Var(&profitMonitoring, "monitoring", 0, "연간 모니터링비 (원)")
	f.Float64Var(&profitBankRate, "bank-rate", 0, "은행 대출 금리 (%)")
	f.Float64Var(&profitFactoring, "factoring-fee", 0, "팩토링 수수료율")

	_ = profitCmd.MarkFlagRequired("capacity")
	_ = profitCmd.MarkFlagRequired("investment")
}

func runProfit(cmd *cobra.Command, args []string) error {
	req := profitsvc.AnalysisRequest{
		CapacityKW:         profitCapacity,
		TotalInvestment:    profitInvestment,
		AmortizationMethod: profit.AmortizationMethod(profitMethod),
	}

	f := cmd.Flags()
	if f.Changed("smp") {
		req.SMPPrice = &profitSMP
	}
	if f.Changed("rec") {
		req.RECPrice = &profitREC
	}
	if f.Changed("rec-weight") {
		req.RECWeight = &profitRECWeight
	}
	if f.Changed("peak-hours") {
		req.PeakHours = &profitPeakHours
	}
	if f.Changed("degradation") {
		req.DegradationRate = &profitDegradation
	}
	if f.Changed("maintenance") {
		req.MaintenanceCost = &profitMaintenance
	}
	if f.Changed("monitoring") {
		req.MonitoringCost = &profitMonitoring
	}
	if f.Changed("bank-rate") {
		req.BankInterestRate = &profitBankRate
	}
	if f.Changed("factoring-fee") {
		req.FactoringFeeRate = &profitFactoring
	}

	svc := profitsvc.NewService(profitsvc.AssumptionsFromConfig(appConfig.Simulation), nil, nil, 0)
	outcome, err := svc.Analyze(context.Background(), req)
	if err != nil {
		return err
	}

	if profitScenario == "" {
		return printJSON(cmd.OutOrStdout(), outcome.ScenarioComparison)
	}

	ft := profit.FinancingType(profitScenario)
	for _, res := range outcome.All() {
		if res.FinancingType == ft {
			return printJSON(cmd.OutOrStdout(), res)
		}
	}
	return fmt.Errorf("%w: %q", profit.ErrInvalidFinancingType, profitScenario)
}
