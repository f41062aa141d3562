package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"github.com/couchcryptid/aqi-insights-service/internal/wardstore"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// localWardID asks for the default reference ward instead of a specific one.
const localWardID = "local"

// Server exposes health, readiness, metrics, and read-only ward views.
type Server struct {
	httpServer *http.Server
	store      *wardstore.Store
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and /wards routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, store *wardstore.Store, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /wards", s.handleListWards)
	mux.HandleFunc("GET /wards/{id}/insight", s.handleCitizenInsight)
	mux.HandleFunc("GET /wards/{id}/summary", s.handleSummary)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleListWards(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleCitizenInsight(w http.ResponseWriter, r *http.Request) {
	wards := s.store.Snapshot()
	ref, err := s.reference(wards, r.PathValue("id"))
	if err != nil {
		s.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.BuildCitizenInsight(ref, wards))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ref, err := s.reference(s.store.Snapshot(), r.PathValue("id"))
	if err != nil {
		s.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.SummarizeWard(ref))
}

func (s *Server) reference(wards []domain.Ward, id string) (domain.Ward, error) {
	if id == localWardID {
		id = ""
	}
	return domain.SelectReference(wards, id)
}

func (s *Server) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrWardNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNoWards):
		status = http.StatusServiceUnavailable
	default:
		s.logger.Error("ward lookup failed", "error", err, "path", r.URL.Path)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
