package cli

import (
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
)

// readInput reads raw bytes from path, or from stdin when path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "input file not found: %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to read %s", path)
	}
	return data, nil
}

// readGraph loads and decodes a graph from path or stdin.
func readGraph(path string) (graph.Graph, error) {
	data, err := readInput(path)
	if err != nil {
		return graph.Graph{}, err
	}
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return graph.Graph{}, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid graph JSON")
	}
	return g, nil
}

// readRelationships loads and decodes a relationship list from path or stdin.
func readRelationships(path string) ([]graph.Relationship, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	var rels []graph.Relationship
	if err := json.Unmarshal(data, &rels); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid relationship JSON")
	}
	return rels, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeResult serializes v as indented JSON to path (or stdout if empty).
func writeResult(v any, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
