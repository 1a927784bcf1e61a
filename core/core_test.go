// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph declaration contracts.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossomtrace/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateVertex)

	// declaration order, not lexical order
	assert.Equal(t, []string{"B", "A"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
}

func TestGraph_VerticesIsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	vs := g.Vertices()
	vs[0] = "mutated"
	assert.Equal(t, []string{"A"}, g.Vertices())
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, g.AddVertex(id))
	}

	id, err := g.AddEdge("1", "2")
	require.NoError(t, err)
	assert.Equal(t, "e0", id)

	id, err = g.AddEdge("2", "3")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	_, err = g.AddEdge("1", "9")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("", "1")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("2", "2")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// reversed pair is still a parallel edge
	_, err = g.AddEdge("2", "1")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.Equal(t, []core.Edge{
		{ID: "e0", From: "1", To: "2"},
		{ID: "e1", From: "2", To: "3"},
	}, g.Edges())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "2"))
	assert.False(t, g.HasEdge("1", "3"))
}

func TestGraph_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	_, err := g.AddEdge("a", "a")
	require.NoError(t, err)
	first, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)

	e, ok := g.EdgeBetween("b", "a")
	require.True(t, ok)
	assert.Equal(t, first, e.ID, "first declared edge is authoritative")
	assert.True(t, g.Edges()[0].IsLoop())
}

func TestGraph_AddEdgeWithID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))

	require.NoError(t, g.AddEdgeWithID("e0", "a", "b"))
	assert.ErrorIs(t, g.AddEdgeWithID("", "a", "c"), core.ErrEmptyEdgeID)
	assert.ErrorIs(t, g.AddEdgeWithID("e0", "a", "c"), core.ErrDuplicateEdgeID)

	// generated IDs skip the one claimed explicitly
	id, err := g.AddEdge("b", "c")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{ID: "e0", From: "u", To: "v"}
	assert.Equal(t, "v", e.Other("u"))
	assert.Equal(t, "u", e.Other("v"))
	assert.Equal(t, "", e.Other("w"))
	assert.False(t, e.IsLoop())
}

// TestGraph_ConcurrentAddEdge ensures concurrent AddEdge calls are safe and
// every generated ID is unique.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("X"))
	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, num)
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, num)
}
