package input

import (
	"errors"

	"github.com/katalvlaran/blossomtrace/core"
)

// Sentinel errors for input parsing. Parsers report every offending line at
// once as a *multierror.Error whose entries wrap these sentinels, so
// errors.Is works on the aggregate.
var (
	// ErrNoVertices is returned when the vertex list is empty.
	ErrNoVertices = errors.New("input: no vertices")

	// ErrMalformedEdge is returned for an edge line without two endpoints.
	ErrMalformedEdge = errors.New("input: malformed edge line")

	// ErrUnknownVertex is returned for an edge naming an undeclared vertex.
	ErrUnknownVertex = core.ErrVertexNotFound

	// ErrDuplicateVertex is returned when a vertex is declared twice.
	ErrDuplicateVertex = core.ErrDuplicateVertex

	// ErrDuplicateEdgeID is returned when an explicit edge ID repeats.
	ErrDuplicateEdgeID = core.ErrDuplicateEdgeID
)
