package blossom

import "fmt"

// nextMark starts a fresh marking round; stale marks from earlier rounds
// compare unequal to the new stamp, so the table is never cleared.
func (e *Engine) nextMark() int {
	e.markStamp++

	return e.markStamp
}

// lca finds the base of the blossom closed by the edge between OUTER
// vertices u and v.
//
// Steps:
//  1. From u, repeatedly take the base, mark it, and hop to the base of the
//     partner's parent; stop at the exposed root.
//  2. From v, walk the same way and return the first marked base.
//
// Both walks follow the alternating tree up to the root, so they must meet.
// Not meeting is ErrBrokenInvariant.
//
// Complexity: O(V).
func (e *Engine) lca(u, v int) (int, error) {
	stamp := e.nextMark()

	for a := u; ; {
		a = e.base[a]
		e.mark[a] = stamp
		m := e.partner(a)
		if m == none {
			break
		}
		a = e.parent[m]
	}

	for b := v; b != none; {
		b = e.base[b]
		if e.mark[b] == stamp {
			return b, nil
		}
		m := e.partner(b)
		if m == none {
			break
		}
		b = e.parent[m]
	}

	return none, fmt.Errorf("%w: no common base for %s and %s", ErrBrokenInvariant, e.ids[u], e.ids[v])
}
