package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lawgate/internal/auth/handler"
	"lawgate/internal/platform/health"
	"lawgate/internal/platform/metrics"
	"lawgate/internal/platform/middleware"
)

// requestTimeout bounds every request, including license uploads.
const requestTimeout = 30 * time.Second

// NewRouter wires all endpoints with the shared middleware stack. Routes
// under the authenticated group additionally require a valid bearer token.
func NewRouter(
	auth *handler.Handler,
	healthHandler *health.Handler,
	jwtValidator middleware.JWTValidator,
	m *metrics.Metrics,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))
	r.Use(middleware.Timeout(requestTimeout))

	auth.Register(r)
	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(jwtValidator, logger))
		auth.RegisterProtected(pr)
	})

	return r
}
