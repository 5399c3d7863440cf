package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/response"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/profit"
	profitsvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/profit"
)

// ProfitHandler handles solar profit analysis requests
type ProfitHandler struct {
	svc *profitsvc.Service
}

// NewProfitHandler creates a new ProfitHandler
func NewProfitHandler(svc *profitsvc.Service) *ProfitHandler {
	return &ProfitHandler{svc: svc}
}

// Analyze handles POST /api/profit-analysis
// 자기자본/은행대출/정책자금/팩토링 4개 시나리오의 20년 현금흐름 반환
func (h *ProfitHandler) Analyze(c *gin.Context) {
	var req profitsvc.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		if field, ok := profitErrorField(err); ok {
			response.ValidationError(c, []response.FieldError{{Field: field, Message: err.Error()}})
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, outcome)
}

// Defaults handles GET /api/profit-analysis/defaults
func (h *ProfitHandler) Defaults(c *gin.Context) {
	response.Success(c, h.svc.Defaults())
}

// profitErrorField maps a validation error to the offending request field
func profitErrorField(err error) (string, bool) {
	fields := []struct {
		err   error
		field string
	}{
		{profit.ErrInvalidCapacity, "capacityKw"},
		{profit.ErrInvalidInvestment, "totalInvestment"},
		{profit.ErrInvalidAmortization, "amortizationMethod"},
		{profit.ErrInvalidDegradation, "degradationRate"},
		{profit.ErrInvalidPeakHours, "peakHours"},
		{profit.ErrInvalidSMPPrice, "smpPrice"},
		{profit.ErrInvalidRECPrice, "recPrice"},
		{profit.ErrInvalidRECWeight, "recWeight"},
		{profit.ErrInvalidMaintenanceCost, "maintenanceCost"},
		{profit.ErrInvalidMonitoringCost, "monitoringCost"},
		{profit.ErrInvalidInterestRate, "bankInterestRate"},
		{profit.ErrInvalidFactoringFeeRate, "factoringFeeRate"},
		// 시나리오에서 파생되는 값 (투자비 기준)
		{profit.ErrInvalidRate, "totalInvestment"},
		{profit.ErrInvalidLoan, "totalInvestment"},
		{profit.ErrInvalidFinancingType, "financingType"},
	}
	for _, f := range fields {
		if errors.Is(err, f.err) {
			return f.field, true
		}
	}
	return "", false
}
