package profit

// ProjectionYears 수익 분석 기간 (년)
const ProjectionYears = 20

// NotRecovered 20년 내 투자금 회수 불가 시 PaybackPeriod 값
const NotRecovered = 0

// =============================================================================
// Financing Types
// =============================================================================

// FinancingType 자금 조달 방식
type FinancingType string

const (
	FinancingSelfFunding    FinancingType = "SELF_FUNDING"    // 자기자본
	FinancingBankLoan       FinancingType = "BANK_LOAN"       // 은행 대출
	FinancingGovernmentLoan FinancingType = "GOVERNMENT_LOAN" // 정책자금 (융자)
	FinancingFactoring      FinancingType = "FACTORING"       // 팩토링 (보증+보험)
)

// ValidFinancingTypes 유효한 조달 방식 목록
var ValidFinancingTypes = []FinancingType{
	FinancingSelfFunding,
	FinancingBankLoan,
	FinancingGovernmentLoan,
	FinancingFactoring,
}

// IsValid 유효한 조달 방식인지 확인
func (f FinancingType) IsValid() bool {
	for _, valid := range ValidFinancingTypes {
		if f == valid {
			return true
		}
	}
	return false
}

// AmortizationMethod 원금 상환 방식
type AmortizationMethod string

const (
	AmortizationEqualPrincipal AmortizationMethod = "EQUAL_PRINCIPAL" // 원금균등
	AmortizationEqualPayment   AmortizationMethod = "EQUAL_PAYMENT"   // 원리금균등
)

// IsValid 유효한 상환 방식인지 확인 (빈 값은 원금균등으로 간주)
func (m AmortizationMethod) IsValid() bool {
	return m == "" || m == AmortizationEqualPrincipal || m == AmortizationEqualPayment
}

// OrDefault 빈 값이면 원금균등 반환
func (m AmortizationMethod) OrDefault() AmortizationMethod {
	if m == "" {
		return AmortizationEqualPrincipal
	}
	return m
}

// =============================================================================
// Input
// =============================================================================

// AnalysisInput 단일 수익 분석 입력값
type AnalysisInput struct {
	CapacityKW      float64       `json:"capacityKw"`      // 설비 용량 (kW)
	TotalInvestment int64         `json:"totalInvestment"` // 총 투자비 (원)
	FinancingType   FinancingType `json:"financingType"`
	SelfFundingRate float64       `json:"selfFundingRate"` // 자기자본 비율 (0~1)

	LoanAmount         int64              `json:"loanAmount"`   // 대출 원금 (원)
	InterestRate       float64            `json:"interestRate"` // 연 이율 (%)
	LoanPeriod         int                `json:"loanPeriod"`   // 대출 기간 (년)
	GracePeriod        int                `json:"gracePeriod"`  // 거치 기간 (년)
	AmortizationMethod AmortizationMethod `json:"amortizationMethod,omitempty"`

	GuaranteeFeeRate float64 `json:"guaranteeFeeRate,omitempty"` // 보증료율 (팩토링, 1회)
	FactoringFeeRate float64 `json:"factoringFeeRate,omitempty"` // 팩토링 수수료율 (매년)

	PeakHours       float64 `json:"peakHours"`       // 일평균 발전시간
	DegradationRate float64 `json:"degradationRate"` // 연간 효율 저하율

	SMPPrice  float64 `json:"smpPrice"`  // SMP 단가 (원/kWh)
	RECPrice  float64 `json:"recPrice"`  // REC 단가 (원/REC)
	RECWeight float64 `json:"recWeight"` // REC 가중치

	MaintenanceCost int64 `json:"maintenanceCost"` // 연간 유지보수비
	MonitoringCost  int64 `json:"monitoringCost"`  // 연간 모니터링비
}

// InitialEquity 자기자본 투입액 (누적 현금흐름 기준선)
func (in AnalysisInput) InitialEquity() int64 {
	return RoundWon(float64(in.TotalInvestment) * in.SelfFundingRate)
}

// =============================================================================
// Result
// =============================================================================

// YearlyDataItem 연도별 현금흐름
type YearlyDataItem struct {
	Year          int     `json:"year"`
	EnergyKWh     float64 `json:"energyKwh"`     // 발전량
	SMPRevenue    int64   `json:"smpRevenue"`    // SMP 수익
	RECRevenue    int64   `json:"recRevenue"`    // REC 수익
	TotalRevenue  int64   `json:"totalRevenue"`  // 총 수익
	OperatingCost int64   `json:"operatingCost"` // 유지보수 + 모니터링
	LoanPrincipal int64   `json:"loanPrincipal"` // 원금 상환액
	LoanInterest  int64   `json:"loanInterest"`  // 이자
	FinancingFee  int64   `json:"financingFee"`  // 보증료 + 팩토링 수수료
	NetCashFlow   int64   `json:"netCashFlow"`
	CumulativeCF  int64   `json:"cumulativeCashFlow"`
}

// DebtService 해당 연도 금융 비용 합계
func (y YearlyDataItem) DebtService() int64 {
	return y.LoanPrincipal + y.LoanInterest + y.FinancingFee
}

// AnalysisResult 수익 분석 결과
type AnalysisResult struct {
	FinancingType  FinancingType    `json:"financingType"`
	YearlyData     []YearlyDataItem `json:"yearlyData"`
	PaybackPeriod  int              `json:"paybackPeriod"` // 0 = 미회수
	TotalProfit20y int64            `json:"totalProfit20y"`
	ROI            float64          `json:"roi"`
	InitialEquity  int64            `json:"initialEquity"`
}

// Recovered 투자금 회수 여부
func (r *AnalysisResult) Recovered() bool {
	return r.PaybackPeriod != NotRecovered
}

// ScenarioComparison 조달 방식별 비교 결과
type ScenarioComparison struct {
	SelfFunding    *AnalysisResult `json:"selfFunding"`
	BankLoan       *AnalysisResult `json:"bankLoan"`
	GovernmentLoan *AnalysisResult `json:"governmentLoan"`
	Factoring      *AnalysisResult `json:"factoring"`
	BestScenario   FinancingType   `json:"bestScenario"`
}

// All 조달 방식 순서대로 결과 반환
func (c *ScenarioComparison) All() []*AnalysisResult {
	return []*AnalysisResult{c.SelfFunding, c.BankLoan, c.GovernmentLoan, c.Factoring}
}
