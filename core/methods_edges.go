// File: methods_edges.go
// Role: Edge declaration & queries: AddEdge/AddEdgeWithID/HasEdge/EdgeBetween/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in declaration order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal, starting at e0).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge declares an undirected edge between two declared vertices and
// returns its generated ID ("e0", "e1", ...).
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock mu, require both endpoints declared.
//  3. Enforce the multi-edge policy.
//  4. Generate the next free eid and append.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Skip generated IDs already claimed through AddEdgeWithID.
	eid := nextEdgeID(g)
	for {
		if _, used := g.edgeIDs[eid]; !used {
			break
		}
		eid = nextEdgeID(g)
	}
	if err := g.addEdgeLocked(eid, from, to); err != nil {
		return "", err
	}

	return eid, nil
}

// AddEdgeWithID declares an undirected edge with a caller-chosen ID.
//
// Errors:
//   - ErrEmptyEdgeID, ErrDuplicateEdgeID for bad IDs.
//   - ErrEmptyVertexID, ErrVertexNotFound for bad endpoints.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed per graph policy.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeWithID(id, from, to string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, used := g.edgeIDs[id]; used {
		return fmt.Errorf("%w: %q", ErrDuplicateEdgeID, id)
	}

	return g.addEdgeLocked(id, from, to)
}

// addEdgeLocked validates endpoints and policy, then appends. Caller holds mu.
func (g *Graph) addEdgeLocked(eid, from, to string) error {
	if _, ok := g.vertexSet[from]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertexSet[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	key := makePairKey(from, to)
	if !g.allowMulti && g.pairs[key] > 0 {
		return fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.edgeIDs[eid] = struct{}{}
	g.pairs[key]++
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})

	return nil
}

// HasEdge reports whether at least one edge joins a and b (either direction).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[makePairKey(a, b)] > 0
}

// EdgeBetween returns the first declared edge joining a and b.
// Complexity: O(E).
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return e, true
		}
	}

	return Edge{}, false
}

// Edges returns a copy of all edges in declaration order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of declared edges, loops and duplicates included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID produces the next "e<N>" identifier. Caller holds mu.
func nextEdgeID(g *Graph) string {
	n := g.nextEdgeID
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
