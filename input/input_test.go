package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossomtrace/core"
	"github.com/katalvlaran/blossomtrace/input"
)

func edgeTriples(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.ID+":"+e.From+"-"+e.To)
	}

	return out
}

func TestParseText(t *testing.T) {
	t.Parallel()

	g, err := input.ParseText("1, 2 3\t4,5", "1 2\n\n# a comment\n2 3   # trailing\n3 1\n4 5\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, g.Vertices())
	assert.Equal(t, []string{"e0:1-2", "e1:2-3", "e2:3-1", "e3:4-5"}, edgeTriples(g))
}

func TestParseText_ExplicitIDs(t *testing.T) {
	t.Parallel()

	g, err := input.ParseText("a b c", "a b\nb c e0\nc a")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1:a-b", "e0:b-c", "e2:c-a"}, edgeTriples(g))
}

func TestParseText_LoopsAndParallelAccepted(t *testing.T) {
	t.Parallel()

	g, err := input.ParseText("1 2", "1 1\n1 2\n2 1")
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestParseText_AggregatesErrors(t *testing.T) {
	t.Parallel()

	_, err := input.ParseText("1 2 2 3", "1 2\n1\n2 9\n1 2 3 4\n3 1 x\n1 3 x")
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)

	assert.ErrorIs(t, err, input.ErrDuplicateVertex)
	assert.ErrorIs(t, err, input.ErrMalformedEdge)
	assert.ErrorIs(t, err, input.ErrUnknownVertex)
	assert.ErrorIs(t, err, input.ErrDuplicateEdgeID)

	msg := err.Error()
	assert.Contains(t, msg, "line 2")
	assert.Contains(t, msg, "line 3: edge 2 9")
	assert.Contains(t, msg, "line 4")
	assert.Contains(t, msg, "line 6")
}

func TestParseText_NoVertices(t *testing.T) {
	t.Parallel()

	_, err := input.ParseText("  # nothing", "")
	assert.ErrorIs(t, err, input.ErrNoVertices)
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc := `# triangle with a tail
1 2 3 4

1 2
2 3
3 1
3 4
`
	g, err := input.ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())

	_, err = input.ParseDocument(strings.NewReader("1 2\n\n1 7\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = input.ParseDocument(strings.NewReader("\n# only comments\n"))
	assert.ErrorIs(t, err, input.ErrNoVertices)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	src := `
vertices: [1, 2, 3]
edges:
  - {u: 1, v: 2}
  - {id: e0, u: 2, v: 3}
  - {u: 3, v: 1}
`
	g, err := input.ParseYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, g.Vertices())
	assert.Equal(t, []string{"e1:1-2", "e0:2-3", "e2:3-1"}, edgeTriples(g))
}

func TestParseYAML_JSON(t *testing.T) {
	t.Parallel()

	g, err := input.ParseYAML(strings.NewReader(`{"vertices":["a","b"],"edges":[{"u":"a","v":"b"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"e0:a-b"}, edgeTriples(g))
}

func TestParseYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := input.ParseYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, input.ErrNoVertices)

	_, err = input.ParseYAML(strings.NewReader("vertices: [a, a]\nedges:\n  - {u: a}\n  - {u: a, v: z}\n"))
	assert.ErrorIs(t, err, input.ErrDuplicateVertex)
	assert.ErrorIs(t, err, input.ErrMalformedEdge)
	assert.ErrorIs(t, err, input.ErrUnknownVertex)

	_, err = input.ParseYAML(strings.NewReader("vertices: {a: 1}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	g, err := input.ParseText("x y z", "x y\ny z")
	require.NoError(t, err)

	back, err := input.FromGraph(g).Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "g.txt")
	yml := filepath.Join(dir, "g.yml")
	require.NoError(t, os.WriteFile(txt, []byte("1 2 3\n1 2\n2 3\n"), 0o600))
	require.NoError(t, os.WriteFile(yml, []byte("vertices: [1, 2]\nedges: [{u: 1, v: 2}]\n"), 0o600))

	g, err := input.Load(txt)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	g, err = input.Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = input.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
