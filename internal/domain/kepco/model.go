package kepco

import "fmt"

// VoltageType 공급 전압 구분
type VoltageType string

const (
	VoltageLow       VoltageType = "저압"
	VoltageHigh      VoltageType = "고압"
	VoltageExtraHigh VoltageType = "특별고압"
)

// IsValid 유효한 전압 구분인지 확인
func (v VoltageType) IsValid() bool {
	return v == VoltageLow || v == VoltageHigh || v == VoltageExtraHigh
}

// SupplyType 공급 방식 (가공/지중)
type SupplyType string

const (
	SupplyOverhead    SupplyType = "공중"
	SupplyUnderground SupplyType = "지중"
)

// IsValid 유효한 공급 방식인지 확인
func (s SupplyType) IsValid() bool {
	return s == SupplyOverhead || s == SupplyUnderground
}

// PaymentType 납부 방식
type PaymentType string

const (
	PaymentLumpSum     PaymentType = "LUMP_SUM"    // 일시납
	PaymentInstallment PaymentType = "INSTALLMENT" // 분할납
)

// IsValid 유효한 납부 방식인지 확인
func (p PaymentType) IsValid() bool {
	return p == PaymentLumpSum || p == PaymentInstallment
}

// 분할납부 조건
const (
	InstallmentMonths      = 12
	DownPaymentRate        = 0.30   // 선납금 비율
	InstallmentAnnualRate  = 0.0321 // 분할납부 연 이율
	LowVoltageBaseCapacity = 5      // 저압 기본 용량 (kW)
)

// 입력 및 단가 상한 (시설부담금 합계가 int64 원 단위를 넘지 않는 범위)
const (
	MaxCapacityKW     = 1_000_000             // 1GW
	MaxDistanceCharge = 1_000_000_000_000_000 // 1,000조원
	MaxBaseCharge     = 1_000_000_000_000     // 단가표 기본 정액 상한
	MaxPerKW          = 100_000_000           // 단가표 kW당 단가 상한
)

// ChargeRequest 한전 시설부담금 계산 입력
type ChargeRequest struct {
	CapacityKW     float64     `json:"capacityKw"`
	VoltageType    VoltageType `json:"voltageType"`
	SupplyType     SupplyType  `json:"supplyType"`
	DistanceCharge int64       `json:"distanceCharge"` // 거리 시설부담금 (사용자 입력)
	PaymentType    PaymentType `json:"paymentType"`
}

// Validate 계산 전 입력 검증
func (r ChargeRequest) Validate() error {
	if !(r.CapacityKW > 0 && r.CapacityKW <= MaxCapacityKW) {
		return fmt.Errorf("%w: capacityKw %v (0 < x <= %d)", ErrInvalidCapacity, r.CapacityKW, MaxCapacityKW)
	}
	if !r.VoltageType.IsValid() {
		return ErrInvalidVoltageType
	}
	if !r.SupplyType.IsValid() {
		return ErrInvalidSupplyType
	}
	if r.DistanceCharge < 0 || r.DistanceCharge > MaxDistanceCharge {
		return fmt.Errorf("%w: distanceCharge %d (0 <= x <= %d)", ErrInvalidDistanceCharge, r.DistanceCharge, int64(MaxDistanceCharge))
	}
	if !r.PaymentType.IsValid() {
		return ErrInvalidPaymentType
	}
	return nil
}

// ChargeResult 한전 시설부담금 계산 결과
type ChargeResult struct {
	CapacityKW         float64            `json:"capacityKw"`
	VoltageType        VoltageType        `json:"voltageType"`
	SupplyType         SupplyType         `json:"supplyType"`
	BasicCharge        int64              `json:"basicCharge"`
	BasicChargeDetails []string           `json:"basicChargeDetails"`
	DistanceCharge     int64              `json:"distanceCharge"`
	TotalCharge        int64              `json:"totalCharge"`
	Installment        *InstallmentResult `json:"installment,omitempty"`
}

// InstallmentScheduleItem 월별 분할납부 내역
type InstallmentScheduleItem struct {
	Month            int   `json:"month"`
	Principal        int64 `json:"principal"`
	Interest         int64 `json:"interest"`
	Total            int64 `json:"total"`
	RemainingBalance int64 `json:"remainingBalance"`
}

// InstallmentResult 분할납부 계산 결과
type InstallmentResult struct {
	DownPayment       int64                     `json:"downPayment"`
	Remaining         int64                     `json:"remaining"`
	MonthlyPrincipal  int64                     `json:"monthlyPrincipal"`
	AnnualRate        float64                   `json:"annualRate"`
	Schedule          []InstallmentScheduleItem `json:"schedule"`
	TotalInterest     int64                     `json:"totalInterest"`
	TotalWithInterest int64                     `json:"totalWithInterest"`
}

// =============================================================================
// Tariff
// =============================================================================

// Rate 공급 방식별 단가
type Rate struct {
	BaseCharge int64 `json:"baseCharge" yaml:"base_charge"` // 기본 용량 정액 (저압만 사용)
	PerKW      int64 `json:"perKw" yaml:"per_kw"`           // kW당 단가 (저압은 초과분)
}

// Tariff 전압/공급방식별 시설부담금 단가표
type Tariff struct {
	Version string                              `json:"version" yaml:"version"`
	Rates   map[VoltageType]map[SupplyType]Rate `json:"rates" yaml:"rates"`
}

// Lookup 전압/공급 방식에 해당하는 단가 조회
func (t *Tariff) Lookup(v VoltageType, s SupplyType) (Rate, bool) {
	bySupply, ok := t.Rates[v]
	if !ok {
		return Rate{}, false
	}
	rate, ok := bySupply[s]
	return rate, ok
}
