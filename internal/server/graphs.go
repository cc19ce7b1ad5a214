package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
)

// saveGraphRequest is the body for POST /v1/graphs.
type saveGraphRequest struct {
	Name  string      `json:"name"`
	Graph graph.Graph `json:"graph"`
}

func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var req saveGraphRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid graph payload"))
		return
	}
	if err := apperrors.ValidateGraphName(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := s.store.Save(r.Context(), req.Name, req.Graph)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.logger.Info("graph saved", "id", rec.ID, "name", rec.Name, "nodes", len(rec.Graph.Nodes))
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.logger.Info("graph deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleGraphSort handles GET /v1/graphs/{id}/sort. Results for stored
// graphs flow through the pipeline runner and so can be served from cache.
func (s *Server) handleGraphSort(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	result, _, err := s.runner.Sort(r.Context(), rec.Graph)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGraphCycles(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	result, _, err := s.runner.Cycles(r.Context(), rec.Graph)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleGraphPath handles GET /v1/graphs/{id}/path?from=A&to=B.
func (s *Server) handleGraphPath(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if err := apperrors.ValidateNodeID(from); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := apperrors.ValidateNodeID(to); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	result, _, err := s.runner.Path(r.Context(), rec.Graph, from, to)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
