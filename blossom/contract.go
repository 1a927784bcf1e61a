package blossom

import (
	"fmt"
	"strconv"
)

// blossom is a live contracted odd cycle.
//
// children are live blossoms with a different base that this one swallowed
// on contraction; they are restored and expanded right after their parent.
type blossom struct {
	id       string
	base     int
	members  []int
	children []*blossom
}

// contract collapses the cycle closed by edge u-v into the blossom based at
// root.
//
// Steps:
//  1. Walk u→root and v→root, pointing each walked vertex's parent across
//     the closing edge (so paths can later be traced through the cycle),
//     turning INNER partners OUTER and queueing them, and marking every base
//     met on the way.
//  2. Every vertex whose base was marked moves under root.
//  3. Live blossoms with a marked base other than root become children of
//     the blossom at root, which is created on first use.
//
// Contracting vertices already under root changes nothing but the members
// list, so a blossom found again in the same phase keeps its id.
//
// Complexity: O(V).
func (e *Engine) contract(u, v, root int) {
	stamp := e.nextMark()
	e.markPath(u, root, v, stamp)
	e.markPath(v, root, u, stamp)

	var children []*blossom
	for x := 1; x < len(e.base); x++ {
		b := e.base[x]
		if e.mark[b] != stamp {
			continue
		}
		if b != root {
			if child := e.live[b]; child != nil {
				children = append(children, child)
				e.unlink(child)
			}
		}
	}
	for x := 1; x < len(e.base); x++ {
		if e.mark[e.base[x]] == stamp {
			e.base[x] = root
		}
	}

	rec := e.live[root]
	if rec == nil {
		e.nextBlosID++
		rec = &blossom{id: "B" + strconv.Itoa(e.nextBlosID), base: root}
		e.link(rec)
	}
	rec.children = append(rec.children, children...)
	rec.members = rec.members[:0]
	for x := 1; x < len(e.base); x++ {
		if e.base[x] == root {
			rec.members = append(rec.members, x)
		}
	}

	e.opts.Logger.WithField("blossom", rec.id).WithField("base", e.ids[root]).Debug("blossom contracted")
	e.recordBlossom(StepContract,
		fmt.Sprintf("Blossom %s contracted into a super-node (base: %s). BFS continues from base.",
			rec.id, e.ids[root]), rec)
}

// markPath walks from a up to root, linking each walked vertex to child.
func (e *Engine) markPath(a, root, child, stamp int) {
	for e.base[a] != root {
		w := e.partner(a)
		e.mark[e.base[a]] = stamp
		e.mark[e.base[w]] = stamp
		e.parent[a] = child
		child = w
		if e.label[w] == Inner {
			e.label[w] = Outer
			e.queue = append(e.queue, w)
		}
		a = e.parent[w]
	}
}

// expand dissolves a live blossom: the EXPAND step is taken while it is
// still live, then its members get their own bases back and each swallowed
// child is restored and expanded in turn.
func (e *Engine) expand(b *blossom) {
	e.opts.Logger.WithField("blossom", b.id).Debug("blossom expanded")
	e.recordBlossom(StepExpand,
		fmt.Sprintf("Blossom %s (base: %s) expanded back into its %d vertices.",
			b.id, e.ids[b.base], len(b.members)), b)

	e.unlink(b)
	for _, m := range b.members {
		e.base[m] = m
	}
	for _, child := range b.children {
		for _, m := range child.members {
			e.base[m] = child.base
		}
		e.link(child)
		e.expand(child)
	}
}

// expandAround expands the live blossom containing x, if any.
func (e *Engine) expandAround(x int) {
	if x == none {
		return
	}
	if b := e.live[e.base[x]]; b != nil {
		e.expand(b)
	}
}

// expandAll expands every live blossom in creation order.
func (e *Engine) expandAll() {
	for len(e.order) > 0 {
		e.expand(e.order[0])
	}
}

// link registers b as live.
func (e *Engine) link(b *blossom) {
	e.live[b.base] = b
	e.order = append(e.order, b)
}

// unlink removes b from the live table, keeping creation order.
func (e *Engine) unlink(b *blossom) {
	if e.live[b.base] == b {
		e.live[b.base] = nil
	}
	for i, x := range e.order {
		if x == b {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}
