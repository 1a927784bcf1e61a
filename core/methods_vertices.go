// File: methods_vertices.go
// Role: Vertex declaration & queries.
//
// Determinism:
//   - Vertices() returns IDs in declaration order.
//
// Concurrency:
//   - All reads under mu.RLock, all writes under mu.Lock.
package core

import "fmt"

// AddVertex declares a new vertex.
//
// Unlike a general-purpose graph, declaration is NOT idempotent: the input
// boundary must reject duplicate identifiers, so a second AddVertex with the
// same id returns ErrDuplicateVertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if id was already declared.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertexSet[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.vertexSet[id] = struct{}{}
	g.vertices = append(g.vertices, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertexSet[id]

	return ok
}

// Vertices returns a copy of the vertex IDs in declaration order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of declared vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
