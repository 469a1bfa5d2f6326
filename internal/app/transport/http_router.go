package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/config"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// limiter may be nil, which disables rate limiting.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/itineraries", func(router chi.Router) {
		router.Use(
			middleware.RealIP,
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		if limiter != nil && cfg.RateLimit.RPS > 0 {
			router.Use(httptransport.RateLimit(limiter, cfg.RateLimit.RPS))
		}

		router.Post("/rank", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.Rank,
			httptransport.DecodeRequest[dto.RankRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/optimize", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.Optimize,
			httptransport.DecodeRequest[dto.OptimizeRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
