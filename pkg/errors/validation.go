package errors

import (
	"strings"
	"unicode"
)

// Analysis operation names accepted by the pipeline and the HTTP API.
const (
	OpSort   = "sort"
	OpCycles = "cycles"
	OpPath   = "path"
	OpBuild  = "build"
)

// ValidateOp validates an analysis operation name.
func ValidateOp(op string) error {
	switch op {
	case OpSort, OpCycles, OpPath, OpBuild:
		return nil
	default:
		return New(ErrCodeUnsupported, "unknown operation: %q", op)
	}
}

// ValidateNodeID validates a node identity for use as a lookup key.
// Node labels are opaque, but keys crossing the HTTP or storage boundary
// must not be empty or carry control characters.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node ID cannot be empty")
	}
	if len(id) > 1024 {
		return New(ErrCodeInvalidInput, "node ID too long (max 1024 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node ID contains control characters")
		}
	}
	return nil
}

// ValidateGraphName validates a user-supplied name for a stored graph.
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return New(ErrCodeInvalidInput, "graph name contains invalid characters")
	}
	return nil
}
