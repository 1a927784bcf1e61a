package blossom

import "github.com/katalvlaran/blossomtrace/core"

// isMatched reports whether v currently has a partner.
func (e *Engine) isMatched(v int) bool { return e.mate[v] != none }

// partner returns v's partner or none.
func (e *Engine) partner(v int) int { return e.mate[v] }

// setPartner matches a with b, keeping the table symmetric.
func (e *Engine) setPartner(a, b int) {
	e.mate[a] = b
	e.mate[b] = a
}

// clearPartner unmatches a and b if they are partners of each other.
func (e *Engine) clearPartner(a, b int) {
	if e.mate[a] == b && e.mate[b] == a {
		e.mate[a] = none
		e.mate[b] = none
	}
}

// matchingSize counts matched pairs.
// Complexity: O(V).
func (e *Engine) matchingSize() int {
	size := 0
	for v := 1; v < len(e.mate); v++ {
		if w := e.mate[v]; w != none && v < w {
			size++
		}
	}

	return size
}

// matchingEdges returns the first declared edge of every matched pair,
// ordered by the lower endpoint's index.
// Complexity: O(V).
func (e *Engine) matchingEdges() []core.Edge {
	out := make([]core.Edge, 0, (len(e.mate)-1)/2)
	for v := 1; v < len(e.mate); v++ {
		w := e.mate[v]
		if w == none || w < v {
			continue
		}
		if ed := e.edgeBetween(v, w); ed != nil {
			out = append(out, *ed)
		}
	}

	return out
}

// edgeBetween returns a copy of the authoritative edge joining u and v,
// or nil if they are not adjacent.
func (e *Engine) edgeBetween(u, v int) *core.Edge {
	pos, ok := e.edgeOf[makePair(u, v)]
	if !ok {
		return nil
	}
	ed := e.edges[pos]

	return &ed
}
