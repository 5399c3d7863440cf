package profit

import (
	"fmt"
	"math"
)

// 입력 상한 (20년 누적 금액이 int64 원 단위를 넘지 않는 범위)
const (
	MaxCapacityKW      = 1_000_000                 // 1GW
	MaxAmountWon       = 1_000_000_000_000_000     // 1,000조원 (투자비, 대출, 연간 비용)
	MaxSMPPrice        = 1_000_000                 // 원/kWh
	MaxRECPrice        = 1_000_000_000             // 원/REC
	MaxRECWeight       = 10
	MaxPeakHours       = 24
	MaxInterestRate    = 100  // %
	MinDegradationRate = 1e-9 // 이보다 작으면 float64 에서 1-d == 1
)

// RoundWon 원 단위 반올림 (0.5는 0에서 멀어지는 방향)
// int64 범위를 벗어나면 경계값으로 포화, NaN은 0
func RoundWon(v float64) int64 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= 0x1p63:
		return math.MaxInt64
	case r <= -0x1p63:
		return math.MinInt64
	}
	return int64(r)
}

// Validate 엔진 호출 전 경계 검증
func (in AnalysisInput) Validate() error {
	if !(in.CapacityKW > 0 && in.CapacityKW <= MaxCapacityKW) {
		return fmt.Errorf("%w: capacityKw %v (0 < x <= %d)", ErrInvalidCapacity, in.CapacityKW, MaxCapacityKW)
	}
	if in.TotalInvestment <= 0 || in.TotalInvestment > MaxAmountWon {
		return fmt.Errorf("%w: totalInvestment %d (0 < x <= %d)", ErrInvalidInvestment, in.TotalInvestment, int64(MaxAmountWon))
	}
	if !in.FinancingType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFinancingType, in.FinancingType)
	}
	if !in.AmortizationMethod.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAmortization, in.AmortizationMethod)
	}
	if !inRange(in.SelfFundingRate, 0, 1) {
		return fmt.Errorf("%w: selfFundingRate %v", ErrInvalidRate, in.SelfFundingRate)
	}
	d := in.DegradationRate
	if !(d == 0 || (d >= MinDegradationRate && d < 1)) {
		return fmt.Errorf("%w: degradationRate %v (0 or %v <= x < 1)", ErrInvalidDegradation, d, MinDegradationRate)
	}
	if !inRange(in.PeakHours, 0, MaxPeakHours) {
		return fmt.Errorf("%w: peakHours %v", ErrInvalidPeakHours, in.PeakHours)
	}
	if !inRange(in.SMPPrice, 0, MaxSMPPrice) {
		return fmt.Errorf("%w: smpPrice %v", ErrInvalidSMPPrice, in.SMPPrice)
	}
	if !inRange(in.RECPrice, 0, MaxRECPrice) {
		return fmt.Errorf("%w: recPrice %v", ErrInvalidRECPrice, in.RECPrice)
	}
	if !inRange(in.RECWeight, 0, MaxRECWeight) {
		return fmt.Errorf("%w: recWeight %v", ErrInvalidRECWeight, in.RECWeight)
	}
	if in.MaintenanceCost < 0 || in.MaintenanceCost > MaxAmountWon {
		return fmt.Errorf("%w: maintenanceCost %d", ErrInvalidMaintenanceCost, in.MaintenanceCost)
	}
	if in.MonitoringCost < 0 || in.MonitoringCost > MaxAmountWon {
		return fmt.Errorf("%w: monitoringCost %d", ErrInvalidMonitoringCost, in.MonitoringCost)
	}
	if !inRange(in.InterestRate, 0, MaxInterestRate) {
		return fmt.Errorf("%w: interestRate %v", ErrInvalidInterestRate, in.InterestRate)
	}
	if !inRange(in.FactoringFeeRate, 0, 1) {
		return fmt.Errorf("%w: factoringFeeRate %v", ErrInvalidFactoringFeeRate, in.FactoringFeeRate)
	}
	if !inRange(in.GuaranteeFeeRate, 0, 1) || in.LoanAmount < 0 || in.LoanAmount > MaxAmountWon ||
		in.LoanPeriod < 0 || in.GracePeriod < 0 {
		return fmt.Errorf("%w: loanAmount %d, period %d, grace %d", ErrInvalidLoan, in.LoanAmount, in.LoanPeriod, in.GracePeriod)
	}
	return nil
}

// inRange NaN은 항상 범위 밖
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
