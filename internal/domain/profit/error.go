package profit

import "errors"

var (
	// Validation errors
	ErrInvalidCapacity         = errors.New("capacity out of range")
	ErrInvalidInvestment       = errors.New("total investment out of range")
	ErrInvalidFinancingType    = errors.New("invalid financing type")
	ErrInvalidAmortization     = errors.New("invalid amortization method")
	ErrInvalidRate             = errors.New("rate out of range")
	ErrInvalidDegradation      = errors.New("degradation rate out of range")
	ErrInvalidPeakHours        = errors.New("peak hours out of range")
	ErrInvalidSMPPrice         = errors.New("smp price out of range")
	ErrInvalidRECPrice         = errors.New("rec price out of range")
	ErrInvalidRECWeight        = errors.New("rec weight out of range")
	ErrInvalidMaintenanceCost  = errors.New("maintenance cost out of range")
	ErrInvalidMonitoringCost   = errors.New("monitoring cost out of range")
	ErrInvalidInterestRate     = errors.New("interest rate out of range")
	ErrInvalidFactoringFeeRate = errors.New("factoring fee rate out of range")
	ErrInvalidLoan             = errors.New("loan terms out of range")
)
