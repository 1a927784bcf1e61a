package blossom

import "fmt"

// augment flips the matching along the tree path ending at the exposed
// INNER vertex end.
//
// Walking from end towards the root, each visited vertex cur is paired with
// p = parent[cur], and the walk continues at p's previous partner. Any
// vertex on the way that sits inside a live blossom gets that blossom
// expanded first, so the trace never shows a path crossing a contracted node.
//
// Errors: ErrBrokenInvariant if a vertex on the path has no parent.
//
// Complexity: O(V) plus expansion cost.
func (e *Engine) augment(end int) error {
	for cur := end; cur != none; {
		e.expandAround(cur)
		p := e.parent[cur]
		if p == none {
			return fmt.Errorf("%w: vertex %s on augmenting path has no parent", ErrBrokenInvariant, e.ids[cur])
		}
		e.expandAround(p)

		next := e.partner(p)
		if next != none {
			e.clearPartner(p, next)
		}
		e.setPartner(cur, p)
		cur = next
	}

	return nil
}
