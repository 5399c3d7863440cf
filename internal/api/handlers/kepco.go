package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/response"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
	kepcosvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/kepco"
)

// KepcoHandler handles KEPCO grid-connection charge requests
type KepcoHandler struct {
	svc *kepcosvc.Service
}

// NewKepcoHandler creates a new KepcoHandler
func NewKepcoHandler(svc *kepcosvc.Service) *KepcoHandler {
	return &KepcoHandler{svc: svc}
}

// Calculate handles POST /api/kepco-charge
func (h *KepcoHandler) Calculate(c *gin.Context) {
	var req kepco.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		if field, ok := kepcoErrorField(err); ok {
			response.ValidationError(c, []response.FieldError{{Field: field, Message: err.Error()}})
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, outcome)
}

// Tariffs handles GET /api/kepco-charge/tariffs
func (h *KepcoHandler) Tariffs(c *gin.Context) {
	response.Success(c, h.svc.Tariff())
}

func kepcoErrorField(err error) (string, bool) {
	switch {
	case errors.Is(err, kepco.ErrInvalidCapacity):
		return "capacityKw", true
	case errors.Is(err, kepco.ErrInvalidVoltageType):
		return "voltageType", true
	case errors.Is(err, kepco.ErrInvalidSupplyType):
		return "supplyType", true
	case errors.Is(err, kepco.ErrInvalidDistanceCharge):
		return "distanceCharge", true
	case errors.Is(err, kepco.ErrInvalidPaymentType):
		return "paymentType", true
	}
	return "", false
}
