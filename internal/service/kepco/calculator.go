package kepco

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
)

// Calculator 한전 시설부담금 계산기
// 단가표만 보유하며 상태가 없으므로 동시 호출에 안전
type Calculator struct {
	tariff  *kepco.Tariff
	printer *message.Printer
}

// NewCalculator creates a calculator bound to a tariff table
func NewCalculator(tariff *kepco.Tariff) *Calculator {
	return &Calculator{
		tariff:  tariff,
		printer: message.NewPrinter(language.Korean),
	}
}

// Tariff returns the tariff table in use
func (c *Calculator) Tariff() *kepco.Tariff {
	return c.tariff
}

// CalculateKepcoCharge 기본시설부담금 + 거리시설부담금, 분할납부 시 12개월 상환표 포함
func (c *Calculator) CalculateKepcoCharge(
	capacityKW float64,
	voltageType kepco.VoltageType,
	supplyType kepco.SupplyType,
	distanceCharge int64,
	paymentType kepco.PaymentType,
) (*kepco.ChargeResult, error) {
	rate, ok := c.tariff.Lookup(voltageType, supplyType)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", kepco.ErrRateNotFound, voltageType, supplyType)
	}

	basic, details := c.basicCharge(capacityKW, voltageType, rate)
	total := basic + distanceCharge

	result := &kepco.ChargeResult{
		CapacityKW:         capacityKW,
		VoltageType:        voltageType,
		SupplyType:         supplyType,
		BasicCharge:        basic,
		BasicChargeDetails: details,
		DistanceCharge:     distanceCharge,
		TotalCharge:        total,
	}

	if paymentType == kepco.PaymentInstallment {
		result.Installment = CalculateInstallment(total)
	}

	return result, nil
}

// basicCharge 기본시설부담금
// 저압: 5kW까지 정액 + 초과분 kW 올림 × 단가
// 고압/특별고압: 용량 kW 올림 × 단가
func (c *Calculator) basicCharge(capacityKW float64, voltageType kepco.VoltageType, rate kepco.Rate) (int64, []string) {
	if voltageType == kepco.VoltageLow {
		details := []string{
			c.printer.Sprintf("기본 %dkW: %d원", kepco.LowVoltageBaseCapacity, rate.BaseCharge),
		}

		var excessKW int64
		if capacityKW > kepco.LowVoltageBaseCapacity {
			excessKW = int64(math.Ceil(capacityKW - kepco.LowVoltageBaseCapacity))
		}

		excess := excessKW * rate.PerKW
		if excessKW > 0 {
			details = append(details,
				c.printer.Sprintf("초과 %dkW × %d원 = %d원", excessKW, rate.PerKW, excess))
		}
		return rate.BaseCharge + excess, details
	}

	kw := int64(math.Ceil(capacityKW))
	charge := kw * rate.PerKW
	return charge, []string{
		c.printer.Sprintf("%dkW × %d원 = %d원", kw, rate.PerKW, charge),
	}
}

// CalculateInstallment 선납 30% 후 잔액 12개월 분할 (연 3.21%, 잔액 기준 월 이자)
// 마지막 회차 원금은 남은 잔액 전부 (반올림 오차 정산)
func CalculateInstallment(totalCharge int64) *kepco.InstallmentResult {
	total := decimal.NewFromInt(totalCharge)
	months := decimal.NewFromInt(kepco.InstallmentMonths)
	monthlyRate := decimal.NewFromFloat(kepco.InstallmentAnnualRate).Div(decimal.NewFromInt(12))

	down := total.Mul(decimal.NewFromFloat(kepco.DownPaymentRate)).Round(0)
	remaining := total.Sub(down)
	monthly := remaining.Div(months).Round(0)

	schedule := make([]kepco.InstallmentScheduleItem, 0, kepco.InstallmentMonths)
	balance := remaining
	totalInterest := decimal.Zero

	for m := 1; m <= kepco.InstallmentMonths; m++ {
		// 이자는 해당 월 원금 차감 전 잔액 기준
		interest := balance.Mul(monthlyRate).Round(0)

		principal := decimal.Min(monthly, balance)
		if m == kepco.InstallmentMonths {
			principal = balance
		}
		balance = balance.Sub(principal)
		totalInterest = totalInterest.Add(interest)

		schedule = append(schedule, kepco.InstallmentScheduleItem{
			Month:            m,
			Principal:        principal.IntPart(),
			Interest:         interest.IntPart(),
			Total:            principal.Add(interest).IntPart(),
			RemainingBalance: balance.IntPart(),
		})
	}

	return &kepco.InstallmentResult{
		DownPayment:       down.IntPart(),
		Remaining:         remaining.IntPart(),
		MonthlyPrincipal:  monthly.IntPart(),
		AnnualRate:        kepco.InstallmentAnnualRate,
		Schedule:          schedule,
		TotalInterest:     totalInterest.IntPart(),
		TotalWithInterest: total.Add(totalInterest).IntPart(),
	}
}
