package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smellview/smellview/internal/observability"
)

// NewRouter creates a chi router with all dashboard routes configured.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.AddProject)
			r.Get("/{name}/commits", h.ListCommits)
		})
		r.Get("/commits/{hash}/smells", h.BadSmells)
		r.Get("/refactorings", h.ListRefactorings)
		r.Post("/refactor", h.Refactor)
		r.Get("/config", h.GetConfig)
		r.Put("/config", h.PutConfig)
		r.Get("/history/{project}", h.History)
	})

	return r
}

// unmatchedRoute labels requests no route pattern matched, keeping the
// metric's label set bounded.
const unmatchedRoute = "unmatched"

// requestLogger logs each request through slog and counts it by route pattern.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			observability.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
			logger.Debug("http request",
				"method", r.Method,
				"route", route,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
