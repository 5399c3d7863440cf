package profit

import (
	"math"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
)

// debtYear 연도별 금융 비용
type debtYear struct {
	principal int64
	interest  int64
	fee       int64
}

type debtSchedule [profit.ProjectionYears]debtYear

// buildDebtSchedule 조달 방식에 따른 연도별 원리금/수수료 계산
func buildDebtSchedule(in profit.AnalysisInput) debtSchedule {
	var sched debtSchedule

	if in.LoanAmount <= 0 || in.LoanPeriod <= 0 {
		return sched
	}

	switch in.FinancingType {
	case profit.FinancingBankLoan, profit.FinancingGovernmentLoan:
		amortize(&sched, in)
	case profit.FinancingFactoring:
		factoring(&sched, in)
	}

	return sched
}

// amortize 거치 후 분할상환 (원금균등 또는 원리금균등)
// 거치 기간에는 대출 원금에 대한 이자만 납부
func amortize(sched *debtSchedule, in profit.AnalysisInput) {
	rate := in.InterestRate / 100
	grace := clampGrace(in.GracePeriod, in.LoanPeriod)
	repayYears := in.LoanPeriod - grace

	equalPrincipal := profit.RoundWon(float64(in.LoanAmount) / float64(repayYears))
	annuity := annuityPayment(in.LoanAmount, rate, repayYears)

	balance := in.LoanAmount
	for year := 1; year <= in.LoanPeriod && year <= profit.ProjectionYears; year++ {
		interest := profit.RoundWon(float64(balance) * rate)

		var principal int64
		switch {
		case year <= grace:
			principal = 0
		case year == in.LoanPeriod:
			// 마지막 상환년도에 반올림 잔액 정산
			principal = balance
		case in.AmortizationMethod.OrDefault() == profit.AmortizationEqualPayment:
			principal = clamp(annuity-interest, 0, balance)
		default:
			principal = clamp(equalPrincipal, 0, balance)
		}

		balance -= principal
		sched[year-1] = debtYear{principal: principal, interest: interest}
	}
}

// factoring 팩토링: 대출 원금 기준 정액 이자 + 원금 균등상환
// 보증료는 1년차 1회, 팩토링 수수료는 대출 기간 동안 매년 부과
func factoring(sched *debtSchedule, in profit.AnalysisInput) {
	loan := float64(in.LoanAmount)
	interest := profit.RoundWon(loan * in.InterestRate / 100)
	factoringFee := profit.RoundWon(loan * in.FactoringFeeRate)
	guaranteeFee := profit.RoundWon(loan * in.GuaranteeFeeRate)
	principal := profit.RoundWon(loan / float64(in.LoanPeriod))

	balance := in.LoanAmount
	for year := 1; year <= in.LoanPeriod && year <= profit.ProjectionYears; year++ {
		p := clamp(principal, 0, balance)
		if year == in.LoanPeriod {
			p = balance
		}
		balance -= p

		fee := factoringFee
		if year == 1 {
			fee += guaranteeFee
		}

		sched[year-1] = debtYear{principal: p, interest: interest, fee: fee}
	}
}

// annuityPayment 원리금균등 연간 상환액
func annuityPayment(principal int64, rate float64, years int) int64 {
	if years <= 0 {
		return principal
	}
	if rate == 0 {
		return profit.RoundWon(float64(principal) / float64(years))
	}
	p := float64(principal)
	return profit.RoundWon(p * rate / (1 - math.Pow(1+rate, -float64(years))))
}

// clampGrace 거치 기간은 대출 기간보다 최소 1년 짧아야 함
func clampGrace(grace, period int) int {
	if grace < 0 {
		return 0
	}
	if grace > period-1 {
		return period - 1
	}
	return grace
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
