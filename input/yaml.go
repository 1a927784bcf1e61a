package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossomtrace/core"
)

// Document is the structured graph form read by ParseYAML:
//
//	vertices: [1, 2, 3]
//	edges:
//	  - {u: 1, v: 2}
//	  - {id: closing, u: 3, v: 1}
//
// JSON with the same keys is accepted as well.
type Document struct {
	Vertices []string       `yaml:"vertices" json:"vertices"`
	Edges    []DocumentEdge `yaml:"edges" json:"edges"`
}

// DocumentEdge is one undirected edge; an empty ID is generated.
type DocumentEdge struct {
	ID string `yaml:"id,omitempty" json:"id,omitempty"`
	U  string `yaml:"u" json:"u"`
	V  string `yaml:"v" json:"v"`
}

// ParseYAML decodes a Document from r and builds the graph with the same
// validation and error aggregation as ParseText. Edge positions in errors
// are 1-based indices into the edges list.
func ParseYAML(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoVertices
		}

		return nil, fmt.Errorf("input: decode yaml: %w", err)
	}

	return doc.Graph()
}

// Graph validates the document and builds its graph.
func (d Document) Graph() (*core.Graph, error) {
	if len(d.Vertices) == 0 {
		return nil, ErrNoVertices
	}

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	var err error
	for _, v := range d.Vertices {
		if addErr := g.AddVertex(v); addErr != nil {
			err = multierror.Append(err, fmt.Errorf("vertices: %w", addErr))
		}
	}

	// Explicit ids first so generated ones can avoid them.
	taken := make(map[string]bool, len(d.Edges))
	for _, e := range d.Edges {
		if e.ID != "" {
			taken[e.ID] = true
		}
	}
	next := 0
	for i, e := range d.Edges {
		if e.U == "" || e.V == "" {
			err = multierror.Append(err, fmt.Errorf("edge %d: %w", i+1, ErrMalformedEdge))
			continue
		}
		id := e.ID
		if id == "" {
			for taken[fmt.Sprintf("e%d", next)] {
				next++
			}
			id = fmt.Sprintf("e%d", next)
			next++
		}
		if addErr := g.AddEdgeWithID(id, e.U, e.V); addErr != nil {
			err = multierror.Append(err, fmt.Errorf("edge %d: %s %s: %w", i+1, e.U, e.V, addErr))
		}
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// FromGraph converts g back into a Document, keeping declaration order.
func FromGraph(g *core.Graph) Document {
	edges := g.Edges()
	doc := Document{Vertices: g.Vertices(), Edges: make([]DocumentEdge, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = DocumentEdge{ID: e.ID, U: e.From, V: e.To}
	}

	return doc
}
