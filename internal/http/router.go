package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/ratelimiter"
)

type RouterConfig struct {
	AuthService       domain.AuthService
	DomainService     domain.DomainService
	PixelService      domain.FacebookPixelService
	ConversionService domain.ConversionService
	LeadService       domain.LeadService
	EventService      domain.EventService
	Health            HealthChecker
	// RateLimiter throttles the public auth routes, nil disables it
	RateLimiter     *ratelimiter.RateLimiter
	CORSAllowOrigin string
	Logger          logger.Logger
}

// NewRouter wires every route and wraps the router with the request id,
// tracing, access log and CORS middlewares, outermost first
func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RouteSpanName)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, r, "Rota não encontrada", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, r, "Método não permitido", http.StatusMethodNotAllowed)
	})

	auth := middleware.NewAuthMiddleware(cfg.AuthService)

	NewHealthHandler(cfg.Health).RegisterRoutes(router)
	NewAuthHandler(cfg.AuthService, cfg.RateLimiter, cfg.Logger).RegisterRoutes(router, auth)
	NewDomainHandler(cfg.DomainService, cfg.Logger).RegisterRoutes(router, auth)
	NewFacebookPixelHandler(cfg.PixelService, cfg.Logger).RegisterRoutes(router, auth)
	NewConversionHandler(cfg.ConversionService, cfg.Logger).RegisterRoutes(router, auth)
	NewLeadHandler(cfg.LeadService, cfg.Logger).RegisterRoutes(router, auth)
	NewEventHandler(cfg.EventService, cfg.Logger).RegisterRoutes(router, auth)

	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowOrigin)(handler)
	handler = middleware.RequestLogger(cfg.Logger)(handler)
	handler = middleware.Tracing(handler)
	handler = middleware.RequestID(handler)
	return handler
}
