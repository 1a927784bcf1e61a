package blossom

import (
	"fmt"
	"strings"
)

// search grows an alternating tree from the root seeded by beginPhase and
// returns the augmenting path root→v as vertex indices, or nil if the queue
// runs dry.
//
// For each dequeued OUTER u and each neighbour v in adjacency order:
//   - same base or INNER v: skip silently.
//   - UNLABELED v: label INNER; if exposed the path is found, otherwise its
//     partner becomes OUTER and joins the queue.
//   - OUTER v in another blossom: find the base, contract, keep going.
//
// The queue is never reset inside a phase; contraction appends to it.
func (e *Engine) search(root int) ([]int, error) {
	for head := 0; head < len(e.queue); head++ {
		u := e.queue[head]
		for _, v := range e.adj[u] {
			if e.base[u] == e.base[v] || e.label[v] == Inner {
				continue
			}

			e.record(StepBFSSearch,
				fmt.Sprintf("Exploring edge %s-%s.", e.ids[u], e.ids[v]), nil, e.edgeBetween(u, v))

			switch e.label[v] {
			case Unlabeled:
				e.label[v] = Inner
				e.parent[v] = u

				if !e.isMatched(v) {
					path := e.treePath(v)
					e.record(StepFoundAugmentingPath,
						fmt.Sprintf("Augmenting path P: %s found (ends at exposed vertex %s).",
							e.joinIDs(path, " - "), e.ids[v]), path, nil)

					return path, nil
				}

				w := e.partner(v)
				e.label[w] = Outer
				e.parent[w] = v
				e.queue = append(e.queue, w)
				e.record(StepBFSSearch,
					fmt.Sprintf("Matched edge %s-%s added to the alternating tree.", e.ids[v], e.ids[w]),
					nil, e.edgeBetween(v, w))

			case Outer:
				b, err := e.lca(u, v)
				if err != nil {
					return nil, fmt.Errorf("search from %s: %w", e.ids[root], err)
				}
				e.record(StepBlossomDetected,
					fmt.Sprintf("Blossom detected! Edge %s-%s connects two outer nodes. Base vertex: %s.",
						e.ids[u], e.ids[v], e.ids[b]),
					e.oddCycle(u, v, b), e.edgeBetween(u, v))
				e.contract(u, v, b)
			}
		}
	}

	return nil, nil
}

// treePath walks from the exposed INNER end back to the root along
// parent (INNER→OUTER) and partner (OUTER→INNER) links, and returns the
// path root first. Inside contracted blossoms the parent links set by
// contraction route the walk through the real vertices.
func (e *Engine) treePath(end int) []int {
	var path []int
	for cur := end; cur != none; {
		path = append(path, cur)
		p := e.parent[cur]
		if p == none {
			break
		}
		path = append(path, p)
		cur = e.partner(p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// oddCycle lists the bases around the blossom closed by edge u-v:
// u's side up to b, then b, then v's side back down. The result always has
// odd length.
func (e *Engine) oddCycle(u, v, b int) []int {
	left := e.walkToBase(u, b)
	right := e.walkToBase(v, b)

	cycle := make([]int, 0, len(left)+len(right)+1)
	cycle = append(cycle, left...)
	cycle = append(cycle, b)
	for i := len(right) - 1; i >= 0; i-- {
		cycle = append(cycle, right[i])
	}

	return cycle
}

// walkToBase collects (base, partner) pairs from x's blossom up to b.
func (e *Engine) walkToBase(x, b int) []int {
	var out []int
	for a := e.base[x]; a != b; {
		m := e.partner(a)
		if m == none {
			break
		}
		out = append(out, a, m)
		a = e.base[e.parent[m]]
	}

	return out
}

// joinIDs renders indices as external IDs.
func (e *Engine) joinIDs(path []int, sep string) string {
	names := make([]string, len(path))
	for i, v := range path {
		names[i] = e.ids[v]
	}

	return strings.Join(names, sep)
}
