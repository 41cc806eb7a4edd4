package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pokeranch-backend/internal/config"
	"github.com/heartmarshall/pokeranch-backend/internal/transport/middleware"
)

type trailRoutes interface {
	Dispatch(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	Log(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type healthRoutes interface {
	Live(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

// RouterDeps is everything NewRouter needs to build the HTTP handler.
// Limiter may be nil when rate limiting is disabled.
type RouterDeps struct {
	Logger    *slog.Logger
	Trail     trailRoutes
	Health    healthRoutes
	Validator middleware.TokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter registers every route on a ServeMux and wraps it in the global
// middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /trail/simulate", deps.Trail.Dispatch)
	mux.HandleFunc("POST /trail/finish", deps.Trail.Collect)
	mux.HandleFunc("GET /trail/log", deps.Trail.Log)

	mux.HandleFunc("GET /trail", deps.Trail.List)
	mux.HandleFunc("POST /trail", deps.Trail.Create)
	mux.HandleFunc("GET /trail/{title}", deps.Trail.Get)
	mux.HandleFunc("PATCH /trail/{title}", deps.Trail.Edit)
	mux.HandleFunc("DELETE /trail/{title}", deps.Trail.Delete)

	var limit middleware.Middleware
	if deps.Limiter != nil && deps.RateLimit.Enabled {
		limit = deps.Limiter.Limit(deps.RateLimit.RequestsPerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
		middleware.Logger(deps.Logger),
		limit,
	)(mux)
}
