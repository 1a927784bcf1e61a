package blossom_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/core"
)

// edges builds core edges e0, e1, ... from "u-v" style pairs.
func edges(pairs ...[2]string) []core.Edge {
	out := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = core.Edge{ID: "e" + strconv.Itoa(i), From: p[0], To: p[1]}
	}

	return out
}

type unordered struct{ a, b string }

func key(a, b string) unordered {
	if b < a {
		a, b = b, a
	}

	return unordered{a, b}
}

func matchingSet(m []core.Edge) map[unordered]bool {
	out := make(map[unordered]bool, len(m))
	for _, e := range m {
		out[key(e.From, e.To)] = true
	}

	return out
}

func stepsOf(res *blossom.Result, t blossom.StepType) []blossom.Step {
	var out []blossom.Step
	for _, s := range res.Steps {
		if s.Type == t {
			out = append(out, s)
		}
	}

	return out
}

// bruteForce returns the maximum matching size by exhaustive search.
// Exponential; keep inputs small.
func bruteForce(vertices []string, es []core.Edge) int {
	idx := make(map[string]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}
	adj := make([][]int, len(vertices))
	for _, e := range es {
		u, okU := idx[e.From]
		v, okV := idx[e.To]
		if !okU || !okV || u == v {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	used := make([]bool, len(vertices))
	var best func(i int) int
	best = func(i int) int {
		for i < len(vertices) && used[i] {
			i++
		}
		if i == len(vertices) {
			return 0
		}
		used[i] = true
		res := best(i + 1) // i stays exposed
		for _, j := range adj[i] {
			if used[j] {
				continue
			}
			used[j] = true
			if r := 1 + best(i+1); r > res {
				res = r
			}
			used[j] = false
		}
		used[i] = false

		return res
	}

	return best(0)
}

// checkTrace asserts the structural properties every trace must satisfy.
func checkTrace(t *testing.T, vertices []string, es []core.Edge, res *blossom.Result) {
	t.Helper()

	require.NotEmpty(t, res.Steps)
	assert.Equal(t, blossom.StepInit, res.Steps[0].Type)
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, blossom.StepDone, last.Type)
	assert.Empty(t, last.Blossoms, "DONE must not carry live blossoms")
	assert.Empty(t, res.Steps[0].Matching)

	// final matching is a valid matching over declared edges
	declared := make(map[string]core.Edge, len(es))
	for _, e := range es {
		declared[e.ID] = e
	}
	seen := make(map[string]bool)
	for _, m := range res.Matching {
		assert.Equal(t, declared[m.ID], m, "matching edge %s not declared", m.ID)
		assert.False(t, m.IsLoop())
		assert.False(t, seen[m.From], "vertex %s matched twice", m.From)
		assert.False(t, seen[m.To], "vertex %s matched twice", m.To)
		seen[m.From], seen[m.To] = true, true
	}
	assert.Equal(t, len(res.Matching), res.Size)
	assert.Equal(t, res.Size, res.Augmentations)
	assert.Equal(t, res.Matching, last.Matching)

	expandCount := make(map[string]int)
	contracted := make(map[string]bool)
	size := 0
	for i, s := range res.Steps {
		assert.Equal(t, i, s.ID)
		assert.Len(t, s.Graph.Vertices, len(vertices))
		if len(vertices) > 0 {
			assert.Equal(t, vertices, s.Graph.Vertices)
		}
		assert.Len(t, s.Labels, len(vertices))

		// matching size only moves on AUGMENT, and then by exactly one
		if s.Type == blossom.StepAugment {
			size++
		}
		assert.Len(t, s.Matching, size, "step %d (%s)", i, s.Type)

		switch s.Type {
		case blossom.StepFoundAugmentingPath:
			checkAlternating(t, s)
		case blossom.StepContract:
			contracted[s.BlossomID] = true
		case blossom.StepExpand:
			assert.True(t, contracted[s.BlossomID], "EXPAND %s before CONTRACT", s.BlossomID)
			expandCount[s.BlossomID]++
		}
	}
	for id := range contracted {
		assert.Equal(t, 1, expandCount[id], "blossom %s expanded %d times", id, expandCount[id])
	}
}

// checkAlternating asserts that a FOUND_AUGMENTING_PATH step carries a
// path between two exposed vertices whose edges alternate free/matched.
func checkAlternating(t *testing.T, s blossom.Step) {
	t.Helper()

	p := s.HighlightPath
	require.GreaterOrEqual(t, len(p), 2)
	require.Equal(t, 0, len(p)%2, "augmenting path must have an even vertex count")
	assert.Contains(t, s.Exposed, p[0])
	assert.Contains(t, s.Exposed, p[len(p)-1])

	matched := matchingSet(s.Matching)
	for i := 0; i+1 < len(p); i++ {
		assert.Equal(t, i%2 == 1, matched[key(p[i], p[i+1])], "edge %s-%s at position %d", p[i], p[i+1], i)
	}
}
