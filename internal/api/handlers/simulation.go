package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/response"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
)

// SimulationHandler serves stored simulation runs
type SimulationHandler struct {
	repo simulation.Repository // nil이면 저장소 미설정
}

// NewSimulationHandler creates a new SimulationHandler
func NewSimulationHandler(repo simulation.Repository) *SimulationHandler {
	return &SimulationHandler{repo: repo}
}

// List handles GET /api/simulations?kind=&limit=
func (h *SimulationHandler) List(c *gin.Context) {
	if h.repo == nil {
		response.ServiceUnavailable(c, "Simulation storage is not configured")
		return
	}

	filter := simulation.ListFilter{}
	if kind := c.Query("kind"); kind != "" {
		k := simulation.Kind(kind)
		filter.Kind = &k
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = l
		}
	}

	if err := filter.Normalize(); err != nil {
		response.ValidationError(c, []response.FieldError{
			{Field: "kind", Message: "kind must be one of: PROFIT_ANALYSIS, KEPCO_CHARGE"},
		})
		return
	}

	sims, err := h.repo.ListRecent(c.Request.Context(), filter)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.SuccessList(c, sims, len(sims))
}

// Get handles GET /api/simulations/:id
func (h *SimulationHandler) Get(c *gin.Context) {
	if h.repo == nil {
		response.ServiceUnavailable(c, "Simulation storage is not configured")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid simulation id")
		return
	}

	sim, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, simulation.ErrSimulationNotFound) {
			response.NotFound(c, "Simulation not found")
			return
		}
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, sim)
}
