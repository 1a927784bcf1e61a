// Package core provides the ordered, thread-safe input Graph consumed by the
// blossom matching engine, together with the validation rules that sit at
// the engine boundary.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted edges only (matching is cardinality-based).
//   - Vertices and edges keep their declaration order; the engine scans
//     vertices and neighbours in exactly this order, so order is part of
//     the reproducibility contract.
//   - Duplicate vertex IDs and edges to undeclared vertices are rejected
//     here, so the engine never has to defend against them.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) can be
//     admitted for structural fidelity; the engine drops loops and treats
//     the first declared parallel edge as authoritative.
//   - A single sync.RWMutex guards all state.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(a,b) or AddEdge(b,a) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	Vertices() []string                           // O(V), declaration order
//	VertexCount() int                             // O(1)
//
//	AddEdge(from, to string) (edgeID string, err error) // O(1), IDs "e0","e1",…
//	AddEdgeWithID(id, from, to string) error            // O(1)
//	HasEdge(a, b string) bool                           // O(1), either direction
//	EdgeBetween(a, b string) (Edge, bool)               // O(E), first declared
//	Edges() []Edge                                      // O(E), declaration order
//	EdgeCount() int                                     // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrDuplicateVertex     – vertex declared twice
//	ErrVertexNotFound      – edge endpoint not declared
//	ErrEmptyEdgeID         – zero-length explicit edge ID
//	ErrDuplicateEdgeID     – explicit edge ID reused
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
