package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
	kepcosvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/kepco"
	profitsvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/profit"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	cfg.Server.Mode = gin.TestMode

	tariff, err := kepcosvc.DefaultTariff()
	require.NoError(t, err)

	return NewRouter(cfg, Dependencies{
		ProfitService: profitsvc.NewService(profitsvc.DefaultAssumptions(), nil, nil, 0),
		KepcoService:  kepcosvc.NewService(kepcosvc.NewCalculator(tariff), nil),
		Version:       "test",
	})
}

func TestRouter_Routes(t *testing.T) {
	engine := newTestRouter(t).Engine()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/health/ready", "", http.StatusOK},
		{http.MethodGet, "/api/health/detailed", "", http.StatusOK},
		{http.MethodPost, "/api/profit-analysis", `{"capacityKw":100,"totalInvestment":150000000}`, http.StatusOK},
		{http.MethodGet, "/api/profit-analysis/defaults", "", http.StatusOK},
		{http.MethodPost, "/api/kepco-charge", `{"capacityKw":6,"voltageType":"저압","supplyType":"공중","paymentType":"LUMP_SUM"}`, http.StatusOK},
		{http.MethodGet, "/api/kepco-charge/tariffs", "", http.StatusOK},
		{http.MethodGet, "/api/simulations", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
