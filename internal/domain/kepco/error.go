package kepco

import "errors"

var (
	// Validation errors
	ErrInvalidCapacity        = errors.New("capacity out of range")
	ErrInvalidVoltageType     = errors.New("invalid voltage type")
	ErrInvalidSupplyType      = errors.New("invalid supply type")
	ErrInvalidPaymentType     = errors.New("invalid payment type")
	ErrInvalidDistanceCharge  = errors.New("distance charge out of range")

	// Tariff errors
	ErrRateNotFound  = errors.New("tariff rate not found")
	ErrInvalidTariff = errors.New("invalid tariff table")
)
