// Package core defines the ordered input Graph consumed by the matching
// engine: declared vertices, undirected edges, and the validation rules that
// guard the engine boundary.
//
// All core APIs take a single sync.RWMutex internally, so a Graph can be
// populated by one goroutine and read by many.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - vertex ID declared twice.
//	ErrVertexNotFound      - edge endpoint was never declared.
//	ErrEmptyEdgeID         - explicit edge ID is the empty string.
//	ErrDuplicateEdgeID     - explicit edge ID declared twice.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates the vertex ID was already declared.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyEdgeID indicates an explicit edge ID was empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateEdgeID indicates an explicit edge ID was already used.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two declared vertices.
//
// From and To are kept in declaration order; the engine treats {From,To}
// and {To,From} as the same pair.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string `json:"id" yaml:"id"`

	// From is the first endpoint as declared.
	From string `json:"from" yaml:"from"`

	// To is the second endpoint as declared.
	To string `json:"to" yaml:"to"`
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return ""
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the ordered, validated input graph.
//
// Vertices and edges keep their declaration order; this order drives the
// engine's scan order and adjacency order, so it is part of the contract.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64              // auto edge ID counter ("e0", "e1", ...)
	vertices   []string            // declaration order
	vertexSet  map[string]struct{} // membership
	edges      []Edge              // declaration order
	edgeIDs    map[string]struct{} // used edge IDs
	pairs      map[pairKey]int     // unordered pair → count of edges
}

// pairKey is an unordered vertex pair with lo <= hi.
type pairKey struct{ lo, hi string }

func makePairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph rejects self-loops and parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexSet: make(map[string]struct{}),
		edgeIDs:   make(map[string]struct{}),
		pairs:     make(map[pairKey]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
