package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/response"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/infra/database/postgres"
)

// Pinger is implemented by optional backends such as the Redis cache
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	dbPool    *postgres.Pool // nil when persistence is disabled
	cache     Pinger         // nil when Redis is disabled
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dbPool *postgres.Pool, cache Pinger, version string) *HealthHandler {
	return &HealthHandler{
		dbPool:    dbPool,
		cache:     cache,
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents a readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// DetailedHealthResponse represents detailed health information
type DetailedHealthResponse struct {
	Status        string                     `json:"status"`
	Version       string                     `json:"version"`
	UptimeSeconds int64                      `json:"uptime_seconds"`
	Timestamp     time.Time                  `json:"timestamp"`
	Components    map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status       string                 `json:"status"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
	Message      string                 `json:"message,omitempty"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Ready returns readiness check with dependency checks
// GET /health/ready
// 계산기는 외부 의존성이 없으므로 설정된 백엔드만 점검
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]string{"calculator": "ok"}
	allReady := true
	message := ""

	if h.dbPool != nil {
		if h.dbPool.Health(c.Request.Context()).Status == "unhealthy" {
			checks["database"] = "error"
			allReady = false
			message = "Database connection failed"
		} else {
			checks["database"] = "ok"
		}
	}

	if h.cache != nil {
		if err := h.pingCache(c.Request.Context()); err != nil {
			checks["redis"] = "error"
			allReady = false
			if message == "" {
				message = "Redis connection failed"
			}
		} else {
			checks["redis"] = "ok"
		}
	}

	status := "ready"
	statusCode := http.StatusOK
	if !allReady {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	})
}

// Detailed returns detailed system health information
// GET /api/health/detailed
func (h *HealthHandler) Detailed(c *gin.Context) {
	components := map[string]ComponentHealth{
		"calculator": {Status: "healthy"},
	}
	overallStatus := "healthy"

	if h.dbPool != nil {
		dbHealth := h.dbPool.Health(c.Request.Context())
		components["database"] = ComponentHealth{
			Status:       dbHealth.Status,
			ResponseTime: dbHealth.ResponseTime,
			Details: map[string]interface{}{
				"active_conns": dbHealth.ActiveConns,
				"idle_conns":   dbHealth.IdleConns,
				"total_conns":  dbHealth.TotalConns,
				"max_conns":    dbHealth.MaxConns,
			},
			Message: dbHealth.Error,
		}
		overallStatus = worse(overallStatus, dbHealth.Status)
	} else {
		components["database"] = ComponentHealth{Status: "disabled"}
	}

	if h.cache != nil {
		start := time.Now()
		comp := ComponentHealth{Status: "healthy"}
		if err := h.pingCache(c.Request.Context()); err != nil {
			comp.Status = "unhealthy"
			comp.Message = err.Error()
		}
		comp.ResponseTime = time.Since(start).String()
		components["redis"] = comp
		// 캐시 장애는 계산에 영향 없음
		if comp.Status != "healthy" {
			overallStatus = worse(overallStatus, "degraded")
		}
	} else {
		components["redis"] = ComponentHealth{Status: "disabled"}
	}

	response.Success(c, DetailedHealthResponse{
		Status:        overallStatus,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now(),
		Components:    components,
	})
}

func (h *HealthHandler) pingCache(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.cache.Ping(pingCtx)
}

// worse returns the more severe of two health statuses
func worse(a, b string) string {
	rank := map[string]int{"healthy": 0, "degraded": 1, "unhealthy": 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
