package blossom

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

// none is the "no vertex" sentinel; real vertices use indices 1..n.
const none = 0

// pair is an unordered pair of vertex indices with lo < hi.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if b < a {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// Engine owns every table of one matching run. Tables are sized n+1 so that
// vertex i lives at index i and index 0 stays the none sentinel.
//
// An Engine is not safe for concurrent use; independent Engines are.
type Engine struct {
	opts Options

	// immutable graph view
	ids    []string       // index → external ID; ids[0] == ""
	index  map[string]int // external ID → index
	edges  []core.Edge    // declared edges, loops and duplicates included
	adj    [][]int        // index → neighbour indices in declaration order
	edgeOf map[pair]int   // pair → position of the first declared edge in edges

	// per-run state
	mate []int // partner table; none = exposed

	// per-phase state
	label  []Label
	parent []int
	base   []int
	queue  []int

	// blossom table
	live       []*blossom // base index → live blossom
	order      []*blossom // live blossoms in creation order
	nextBlosID int

	// scratch marks for LCA and contraction
	mark      []int
	markStamp int

	steps []Step
}

// New builds an Engine for the given vertices (in scan order) and edges.
//
// Input is assumed pre-validated (see package core): duplicate vertex IDs are
// not detected, and edges naming unknown vertices are left out of the
// adjacency. Self-loops are dropped; for parallel edges only the first
// declared one enters the adjacency and is used for matching lookups.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrTooManyVertices if len(vertices) exceeds the configured capacity.
//
// Complexity: O(V + E).
func New(vertices []string, edges []core.Edge, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(vertices)
	if o.MaxVertices > 0 && n > o.MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, o.MaxVertices)
	}

	e := &Engine{
		opts:   o,
		ids:    make([]string, n+1),
		index:  make(map[string]int, n),
		edges:  make([]core.Edge, len(edges)),
		adj:    make([][]int, n+1),
		edgeOf: make(map[pair]int, len(edges)),
		mate:   make([]int, n+1),
		label:  make([]Label, n+1),
		parent: make([]int, n+1),
		base:   make([]int, n+1),
		queue:  make([]int, 0, n),
		live:   make([]*blossom, n+1),
		mark:   make([]int, n+1),
	}
	copy(e.edges, edges)

	for i, id := range vertices {
		e.ids[i+1] = id
		e.index[id] = i + 1
	}

	for pos, ed := range e.edges {
		u, okU := e.index[ed.From]
		v, okV := e.index[ed.To]
		if !okU || !okV || u == v {
			continue
		}
		key := makePair(u, v)
		if _, dup := e.edgeOf[key]; dup {
			continue
		}
		e.edgeOf[key] = pos
		e.adj[u] = append(e.adj[u], v)
		e.adj[v] = append(e.adj[v], u)
	}

	return e, nil
}

// FromGraph builds an Engine from a validated core.Graph.
func FromGraph(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return New(g.Vertices(), g.Edges(), opts...)
}

// Run computes a maximum-cardinality matching and returns it together with
// the full step trace. Every call starts from an empty matching, so repeated
// calls yield identical traces.
//
// Phase driver:
//  1. Scan vertices in declaration order for the first exposed root r.
//  2. Search from r. On success augment, emit AUGMENT and restart the scan.
//  3. On failure emit "no path found" and keep scanning.
//  4. When a whole pass finds nothing, expand leftover blossoms and emit DONE.
//
// Errors: ErrBrokenInvariant if the tree bookkeeping is found inconsistent.
//
// Complexity: O(V) phases × O(V·E) worst case per phase.
func (e *Engine) Run() (*Result, error) {
	e.reset()
	n := len(e.ids) - 1
	log := e.opts.Logger.WithField("vertices", n)
	log.Debug("matching run started")

	e.record(StepInit, fmt.Sprintf("Initial graph with empty matching. Total vertices: %d", n), nil, nil)

	augmentations := 0
	for improved := true; improved; {
		improved = false
		for r := 1; r <= n; r++ {
			if e.isMatched(r) {
				continue
			}

			e.beginPhase(r)
			e.record(StepStartBFS,
				fmt.Sprintf("Starting BFS to find augmenting path from exposed vertex %s.", e.ids[r]), nil, nil)

			path, err := e.search(r)
			if err != nil {
				return nil, err
			}
			if path == nil {
				e.record(StepBFSSearch,
					fmt.Sprintf("BFS finished from %s. No augmenting path found.", e.ids[r]), nil, nil)
				continue
			}

			if err = e.augment(path[len(path)-1]); err != nil {
				return nil, err
			}
			augmentations++
			e.record(StepAugment,
				fmt.Sprintf("Matching augmented along P. Matching size is now %d.", e.matchingSize()),
				path, nil)
			log.WithField("size", augmentations).Debug("augmented")

			improved = true
			break
		}
	}

	e.expandAll()
	matching := e.matchingEdges()
	e.record(StepDone,
		fmt.Sprintf("Algorithm finished. Maximum matching found with %d augmentations. Final size: %d.",
			augmentations, len(matching)), nil, nil)
	log.WithField("size", len(matching)).Debug("matching run finished")

	return &Result{
		Steps:         e.steps,
		Matching:      matching,
		Size:          len(matching),
		Augmentations: augmentations,
	}, nil
}

// Run is a convenience wrapper for New followed by Engine.Run.
func Run(vertices []string, edges []core.Edge, opts ...Option) (*Result, error) {
	e, err := New(vertices, edges, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run()
}

// reset clears all run-level state.
func (e *Engine) reset() {
	for i := range e.mate {
		e.mate[i] = none
		e.label[i] = Unlabeled
		e.parent[i] = none
		e.base[i] = i
		e.live[i] = nil
		e.mark[i] = 0
	}
	e.order = nil
	e.nextBlosID = 0
	e.markStamp = 0
	e.queue = e.queue[:0]
	e.steps = nil
}

// beginPhase expands blossoms left by the previous phase, resets labels,
// parents and bases, and seeds the queue with root labeled OUTER.
func (e *Engine) beginPhase(root int) {
	e.expandAll()
	for i := range e.label {
		e.label[i] = Unlabeled
		e.parent[i] = none
		e.base[i] = i
	}
	e.queue = append(e.queue[:0], root)
	e.label[root] = Outer
	e.opts.Logger.WithField("root", e.ids[root]).Debug("phase started")
}
