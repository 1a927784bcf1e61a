package blossom

import "github.com/katalvlaran/blossomtrace/core"

// record snapshots the full engine state into a new Step, appends it to the
// trace and streams it to the OnStep hook.
//
// Every collection in the Step is freshly allocated here, so later engine
// mutation can never leak into an emitted Step.
//
// Complexity: O(V + E) per call.
func (e *Engine) record(t StepType, desc string, path []int, edge *core.Edge) {
	e.emit(e.snapshot(t, desc, path, edge))
}

// recordBlossom records a step whose subject is blossom b; b's members are
// highlighted.
func (e *Engine) recordBlossom(t StepType, desc string, b *blossom) {
	s := e.snapshot(t, desc, b.members, nil)
	s.BlossomID = b.id
	e.emit(s)
}

func (e *Engine) emit(s Step) {
	e.steps = append(e.steps, s)
	e.opts.OnStep(s)
}

func (e *Engine) snapshot(t StepType, desc string, path []int, edge *core.Edge) Step {
	n := len(e.ids) - 1

	vertices := make([]string, n)
	copy(vertices, e.ids[1:])
	edges := make([]core.Edge, len(e.edges))
	copy(edges, e.edges)

	labels := make(map[string]Label, n)
	parents := make(map[string]string)
	exposed := make([]string, 0)
	for v := 1; v <= n; v++ {
		id := e.ids[v]
		labels[id] = e.label[v]
		if p := e.parent[v]; p != none {
			parents[id] = e.ids[p]
		}
		if !e.isMatched(v) {
			exposed = append(exposed, id)
		}
	}

	blossoms := make([]Blossom, 0, len(e.order))
	for _, b := range e.order {
		members := make([]string, len(b.members))
		for i, m := range b.members {
			members[i] = e.ids[m]
		}
		blossoms = append(blossoms, Blossom{ID: b.id, Base: e.ids[b.base], Members: members})
	}

	var highlight []string
	if len(path) > 0 {
		highlight = make([]string, len(path))
		for i, v := range path {
			highlight[i] = e.ids[v]
		}
	}

	var hlEdge *core.Edge
	if edge != nil {
		c := *edge
		hlEdge = &c
	}

	return Step{
		ID:            len(e.steps),
		Type:          t,
		Description:   desc,
		Graph:         GraphSnapshot{Vertices: vertices, Edges: edges},
		Matching:      e.matchingEdges(),
		Labels:        labels,
		Exposed:       exposed,
		Parent:        parents,
		Blossoms:      blossoms,
		HighlightPath: highlight,
		HighlightEdge: hlEdge,
	}
}
