package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bukubiz/backend/internal/infrastructure/config"
	"github.com/bukubiz/backend/internal/infrastructure/logger"
	"github.com/bukubiz/backend/internal/interfaces/http/dto"
	"github.com/bukubiz/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a group of routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router assembles the gin engine with middleware and registered handlers
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
	log        *zap.Logger
}

// New creates a router configured for the environment
func New(cfg *config.Config, log *zap.Logger, registrars ...RouteRegistrar) *Router {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := dto.RegisterValidations(); err != nil {
		log.Warn("failed to register custom validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}
	engine.Use(
		logger.GinRecovery(log),
		logger.GinMiddleware(log),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
	)
	engine.NoRoute(middleware.NoRoute())

	return &Router{
		engine:     engine,
		registrars: registrars,
		log:        log.Named("router"),
	}
}

// Setup registers all routes under /api/v1 and returns the engine
func (r *Router) Setup() *gin.Engine {
	api := r.engine.Group("/api/v1")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	r.log.Info("routes registered", zap.Int("registrars", len(r.registrars)))
	return r.engine
}
