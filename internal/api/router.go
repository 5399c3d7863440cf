package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/handlers"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/api/middleware"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/simulation"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/infra/database/postgres"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/logger"
	kepcosvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/kepco"
	profitsvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/profit"
)

// Dependencies wired by cmd/api
// DBPool, Cache, Simulations 는 nil 허용
type Dependencies struct {
	DBPool        *postgres.Pool
	Cache         handlers.Pinger
	Simulations   simulation.Repository
	ProfitService *profitsvc.Service
	KepcoService  *kepcosvc.Service
	Version       string
}

// Router holds all dependencies for API routing
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	healthHandler     *handlers.HealthHandler
	profitHandler     *handlers.ProfitHandler
	kepcoHandler      *handlers.KepcoHandler
	simulationHandler *handlers.SimulationHandler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, deps Dependencies) *Router {
	gin.SetMode(cfg.Server.Mode)

	router := &Router{
		engine:            gin.New(),
		config:            cfg,
		healthHandler:     handlers.NewHealthHandler(deps.DBPool, deps.Cache, deps.Version),
		profitHandler:     handlers.NewProfitHandler(deps.ProfitService),
		kepcoHandler:      handlers.NewKepcoHandler(deps.KepcoService),
		simulationHandler: handlers.NewSimulationHandler(deps.Simulations),
	}

	router.setupMiddlewares()
	router.setupRoutes()

	return router
}

// setupMiddlewares configures all global middlewares
func (r *Router) setupMiddlewares() {
	// Recovery middleware (must be first)
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	loggingCfg := middleware.LoggingConfig{
		SkipPaths: []string{"/health", "/health/ready"},
	}
	if r.config.Logging.FileEnabled {
		accessLogger := logger.NewAccessLogger(
			r.config.Logging.FilePath,
			r.config.Logging.RotationSize,
			r.config.Logging.RetentionDays,
		)
		loggingCfg.AccessLogger = &accessLogger
	}
	r.engine.Use(middleware.Logging(loggingCfg))

	if r.config.Server.Mode == gin.DebugMode {
		r.engine.Use(middleware.CORS(middleware.PublicCORSConfig()))
	} else {
		r.engine.Use(middleware.CORS(middleware.PortalCORSConfig(r.config.Server.AllowedOrigins)))
	}
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health checks (no /api prefix)
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/health/ready", r.healthHandler.Ready)

	api := r.engine.Group("/api")
	{
		api.GET("/health/detailed", r.healthHandler.Detailed)

		// 수익성 분석
		api.POST("/profit-analysis", r.profitHandler.Analyze)
		api.GET("/profit-analysis/defaults", r.profitHandler.Defaults)

		// 한전 시설부담금
		kepco := api.Group("/kepco-charge")
		{
			kepco.POST("", r.kepcoHandler.Calculate)
			kepco.GET("/tariffs", r.kepcoHandler.Tariffs)
		}

		// 계산 이력
		sims := api.Group("/simulations")
		{
			sims.GET("", r.simulationHandler.List)
			sims.GET("/:id", r.simulationHandler.Get)
		}
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
