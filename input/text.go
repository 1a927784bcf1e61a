package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/blossomtrace/core"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// line is one content line with its 1-based position in the source.
type line struct {
	no   int
	text string
}

// ParseText builds a graph from the two-field text form: vertices separated
// by whitespace or commas, and one undirected edge "u v [id]" per line.
// Blank lines and "#" comments are ignored. Edges without an explicit id get
// e0, e1, ... in line order, skipping ids already taken.
//
// Self-loops and parallel edges are accepted here; the matching engine drops
// loops and keeps the first of each parallel group.
//
// Errors: every problem is reported, aggregated in a *multierror.Error
// (ErrNoVertices, ErrDuplicateVertex, ErrMalformedEdge, ErrUnknownVertex,
// ErrDuplicateEdgeID).
//
// Complexity: O(len(vertices) + len(edges)).
func ParseText(vertices, edges string) (*core.Graph, error) {
	lines, err := contentLines(strings.NewReader(edges))
	if err != nil {
		return nil, err
	}

	return build(vertexTokens(stripComment(vertices)), lines)
}

// ParseDocument reads the single-stream text form: the first content line
// lists the vertices, every following content line is an edge. Line numbers
// in errors refer to the whole document.
func ParseDocument(r io.Reader) (*core.Graph, error) {
	lines, err := contentLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoVertices
	}

	return build(vertexTokens(lines[0].text), lines[1:])
}

// build declares vertices then edges, collecting every error.
func build(vertices []string, edgeLines []line) (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	var err error
	for _, v := range vertices {
		if addErr := g.AddVertex(v); addErr != nil {
			err = multierror.Append(err, fmt.Errorf("vertices: %w", addErr))
		}
	}

	type pending struct {
		no       int
		id, u, v string
	}
	var explicit, auto []pending
	for _, l := range edgeLines {
		fields := strings.Fields(l.text)
		if len(fields) < 2 || len(fields) > 3 {
			err = multierror.Append(err, fmt.Errorf("line %d: %q: %w", l.no, l.text, ErrMalformedEdge))
			continue
		}
		p := pending{no: l.no, u: fields[0], v: fields[1]}
		if len(fields) == 3 {
			p.id = fields[2]
			explicit = append(explicit, p)
		} else {
			auto = append(auto, p)
		}
	}

	// Explicit ids go in first so generated ids steer around them; the
	// edges are then declared in line order.
	taken := make(map[string]bool, len(explicit))
	for _, p := range explicit {
		taken[p.id] = true
	}
	next := 0
	autoID := make(map[int]string, len(auto))
	for _, p := range auto {
		for taken[fmt.Sprintf("e%d", next)] {
			next++
		}
		autoID[p.no] = fmt.Sprintf("e%d", next)
		taken[autoID[p.no]] = true
		next++
	}

	for _, l := range edgeLines {
		fields := strings.Fields(l.text)
		if len(fields) < 2 || len(fields) > 3 {
			continue
		}
		id, ok := autoID[l.no]
		if !ok {
			id = fields[2]
		}
		if addErr := g.AddEdgeWithID(id, fields[0], fields[1]); addErr != nil {
			err = multierror.Append(err, fmt.Errorf("line %d: edge %s %s: %w", l.no, fields[0], fields[1], addErr))
		}
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// contentLines returns the non-blank, comment-stripped lines of r.
func contentLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		if text := stripComment(sc.Text()); text != "" {
			out = append(out, line{no: no, text: text})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return out, nil
}

func stripComment(s string) string {
	if i := strings.Index(s, commentMarker); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// vertexTokens splits on whitespace and commas.
func vertexTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
