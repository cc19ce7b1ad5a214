// Package server exposes the graph analysis engine over HTTP.
//
// Analysis endpoints accept a JSON graph in the request body and always
// answer 200 with a JSON payload. A body that cannot be decoded yields the
// operation's fallback payload instead of an error status, so callers can
// treat the response shape as fixed.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/pipeline"
	"github.com/dkreuer/grapple/pkg/store"
)

// Server handles HTTP requests for graph analysis and stored graphs.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a Server. A nil store disables the /v1/graphs endpoints
// (they answer 404). A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Handler returns the routed http.Handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.instrument)

	r.Get("/v1/health", s.handleHealth)

	r.Post("/v1/sort", s.handleSort)
	r.Post("/v1/cycles", s.handleCycles)
	r.Post("/v1/path", s.handlePath)
	r.Post("/v1/build", s.handleBuild)
	r.Post("/v1/dot", s.handleDOT)

	if s.store != nil {
		r.Post("/v1/graphs", s.handleSaveGraph)
		r.Get("/v1/graphs", s.handleListGraphs)
		r.Get("/v1/graphs/{id}", s.handleGetGraph)
		r.Delete("/v1/graphs/{id}", s.handleDeleteGraph)
		r.Get("/v1/graphs/{id}/sort", s.handleGraphSort)
		r.Get("/v1/graphs/{id}/cycles", s.handleGraphCycles)
		r.Get("/v1/graphs/{id}/path", s.handleGraphPath)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "server shutdown failed")
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "server failed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeRaw writes pre-encoded JSON bytes.
func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the structured error code.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": apperrors.UserMessage(err),
		"code":  string(apperrors.GetCode(err)),
	})
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeGraphNotFound, apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidGraph, apperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
