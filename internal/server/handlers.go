package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
	"github.com/dkreuer/grapple/pkg/observability"
	"github.com/dkreuer/grapple/pkg/pipeline"
	"github.com/dkreuer/grapple/pkg/render"
	"github.com/dkreuer/grapple/pkg/wire"
)

// maxBodyBytes caps analysis request bodies at 32 MiB.
const maxBodyBytes = 32 << 20

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "request body too large"))
		return nil, false
	}
	return data, true
}

// decodeGraph unmarshals an analysis request body. On failure it emits the
// decode-failure hook and reports false; the caller must answer with the
// operation's fallback payload rather than an error status.
func decodeGraph(ctx context.Context, data []byte, op string) (graph.Graph, bool) {
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		observability.Analysis().OnDecodeFailure(ctx, op)
		return graph.Graph{}, false
	}
	return g, true
}

// handleSort handles POST /v1/sort. Malformed bodies produce the sort
// fallback payload with status 200; well-formed bodies run through the
// caching pipeline like the stored-graph endpoints.
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	g, ok := decodeGraph(r.Context(), data, pipeline.OpSort)
	if !ok {
		writeRaw(w, http.StatusOK, wire.FallbackSort)
		return
	}
	result, _, err := s.runner.Sort(r.Context(), g)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleCycles handles POST /v1/cycles.
func (s *Server) handleCycles(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	g, ok := decodeGraph(r.Context(), data, pipeline.OpCycles)
	if !ok {
		writeRaw(w, http.StatusOK, wire.FallbackCycles)
		return
	}
	result, _, err := s.runner.Cycles(r.Context(), g)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePath handles POST /v1/path?from=A&to=B.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
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
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	g, ok := decodeGraph(r.Context(), data, pipeline.OpPath)
	if !ok {
		writeRaw(w, http.StatusOK, wire.FallbackPath)
		return
	}
	result, _, err := s.runner.Path(r.Context(), g, from, to)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleBuild handles POST /v1/build. The body is a JSON array of
// relationships; malformed bodies produce the empty-graph fallback.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var rels []graph.Relationship
	if err := json.Unmarshal(data, &rels); err != nil {
		observability.Analysis().OnDecodeFailure(r.Context(), pipeline.OpBuild)
		writeRaw(w, http.StatusOK, wire.FallbackGraph)
		return
	}
	writeJSON(w, http.StatusOK, s.runner.Build(r.Context(), rels))
}

// handleDOT handles POST /v1/dot. Unlike the analysis endpoints it rejects
// malformed bodies, since there is no sensible fallback document.
// Query parameters: detailed=true labels edge weights, highlight=cycles
// marks cycle edges.
func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid graph payload"))
		return
	}

	opts := render.Options{Detailed: r.URL.Query().Get("detailed") == "true"}
	if r.URL.Query().Get("highlight") == "cycles" {
		opts.Cycles = graph.DetectCycles(g)
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, render.ToDOT(g, opts))
}
