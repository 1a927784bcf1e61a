package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/core"
	"github.com/katalvlaran/blossomtrace/layout"
	"github.com/katalvlaran/blossomtrace/render"
)

func triangle(t *testing.T) *blossom.Result {
	t.Helper()

	res, err := blossom.Run([]string{"1", "2", "3"}, []core.Edge{
		{ID: "e0", From: "1", To: "2"},
		{ID: "e1", From: "2", To: "3"},
		{ID: "e2", From: "3", To: "1"},
	})
	require.NoError(t, err)

	return res
}

func TestText_BlossomDetected(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, res.Steps[9]))

	want := `#9 BLOSSOM_DETECTED
  Blossom detected! Edge 3-1 connects two outer nodes. Base vertex: 3.
  matching: e0 1-2
  exposed:  3
  labels:   1=OUTER 2=INNER 3=OUTER
  parent:   1<-2 2<-3
  path:     3 2 1
  edge:     e2 3-1
`
	assert.Equal(t, want, buf.String())
}

func TestText_Contract(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, res.Steps[10]))
	assert.Contains(t, buf.String(), "  blossoms: B1{base 3: 1 2 3}\n")
	assert.Contains(t, buf.String(), "  labels:   1=OUTER 2=OUTER 3=OUTER\n")
}

func TestText_Init(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, res.Steps[0]))

	want := `#0 INIT
  Initial graph with empty matching. Total vertices: 3
  matching: -
  exposed:  1 2 3
  labels:   1=UNLABELED 2=UNLABELED 3=UNLABELED
  parent:   -
`
	assert.Equal(t, want, buf.String())
}

func TestEncode_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, res.Steps, render.FormatJSON))
	assert.Contains(t, buf.String(), `"type": "BLOSSOM_DETECTED"`)
	assert.Contains(t, buf.String(), `"blossomId": "B1"`)

	var back []blossom.Step
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res.Steps, back)
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, res.Steps, render.FormatYAML))

	var back []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, len(res.Steps))
	assert.Equal(t, "CONTRACT", back[10]["type"])
	assert.Equal(t, "B1", back[10]["blossomId"])
	labels, ok := back[10]["labels"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "OUTER", labels["2"])
	_, hasEdge := back[0]["highlightEdge"]
	assert.False(t, hasEdge)
}

func TestEncode_Text(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, res.Steps, render.FormatText))
	assert.Equal(t, len(res.Steps), strings.Count(buf.String(), "\n#")+1)
	assert.True(t, strings.HasPrefix(buf.String(), "#0 INIT\n"))
}

func TestEncode_EmptyJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, nil, render.FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	f, err := render.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, render.FormatJSON, f)

	_, err = render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	err = render.Encode(&bytes.Buffer{}, nil, render.Format("toml"))
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, res))
	assert.Equal(t, "maximum matching: size 1, 1 augmentations, 14 steps\n  e0 1-2\nexposed: 3\n", buf.String())
}

func TestSVG(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, res.Steps[9]))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, `<svg width="460.00" height="460.00"`)
	assert.Contains(t, out, `viewBox="0.00 0.00 460.00 460.00"`)
	assert.Contains(t, out, "<title>#9 BLOSSOM_DETECTED: Blossom detected! Edge 3-1 connects two outer nodes. Base vertex: 3.</title>")
	assert.Equal(t, 3, strings.Count(out, "<line "))
	assert.Equal(t, 3, strings.Count(out, "<circle "))
	assert.Contains(t, out, `stroke="blue"`)
	assert.Contains(t, out, `stroke="purple" stroke-width="5"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVG_EscapesAndOptions(t *testing.T) {
	t.Parallel()

	res, err := blossom.Run([]string{"<a>", "b&c"}, []core.Edge{{ID: "e0", From: "<a>", To: "b&c"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, res.Steps[0], layout.WithSize(300), layout.WithNodeRadius(10)))
	out := buf.String()
	assert.Contains(t, out, "&lt;a&gt;")
	assert.Contains(t, out, "b&amp;c")
	assert.Contains(t, out, `width="300.00"`)
	assert.Contains(t, out, `r="10.00"`)

	err = render.SVG(&buf, res.Steps[0], layout.WithSize(-1))
	assert.ErrorIs(t, err, layout.ErrOptionViolation)
}

// ring builds a pentagon a..e with the chord a-c.
func ring(typ blossom.StepType, path []string) blossom.Step {
	vs := []string{"a", "b", "c", "d", "e"}
	es := []core.Edge{
		{ID: "ab", From: "a", To: "b"},
		{ID: "bc", From: "b", To: "c"},
		{ID: "cd", From: "c", To: "d"},
		{ID: "de", From: "d", To: "e"},
		{ID: "ea", From: "e", To: "a"},
		{ID: "ac", From: "a", To: "c"},
	}

	return blossom.Step{
		Type:          typ,
		Graph:         blossom.GraphSnapshot{Vertices: vs, Edges: es},
		Labels:        map[string]blossom.Label{},
		HighlightPath: path,
	}
}

func svgLines(t *testing.T, s blossom.Step, prefix string) []string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, s))
	var out []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}

	return out
}

func TestSVG_CycleSkipsChords(t *testing.T) {
	t.Parallel()

	lines := svgLines(t, ring(blossom.StepBlossomDetected, []string{"a", "b", "c", "d", "e"}), "<line ")
	require.Len(t, lines, 6)
	for i, l := range lines[:5] {
		assert.Contains(t, l, `stroke="purple"`, i)
	}
	assert.Contains(t, lines[5], `stroke="#b0bec5"`)
}

func TestSVG_PathSkipsChords(t *testing.T) {
	t.Parallel()

	lines := svgLines(t, ring(blossom.StepFoundAugmentingPath, []string{"a", "b", "c", "d"}), "<line ")
	require.Len(t, lines, 6)
	for i, l := range lines[:3] {
		assert.Contains(t, l, `stroke="#ff5722"`, i)
	}
	// e-a is not closed for a path, and a-c is a chord.
	assert.Contains(t, lines[3], `stroke="#b0bec5"`)
	assert.Contains(t, lines[4], `stroke="#b0bec5"`)
	assert.Contains(t, lines[5], `stroke="#b0bec5"`)
}

func TestSVG_BlossomMembersRinged(t *testing.T) {
	t.Parallel()

	s := ring(blossom.StepContract, []string{"a", "b", "c"})
	s.BlossomID = "B1"
	for _, l := range svgLines(t, s, "<line ") {
		assert.NotContains(t, l, `stroke="purple"`)
	}
	circles := svgLines(t, s, "<circle ")
	require.Len(t, circles, 5)
	for i, l := range circles {
		if i < 3 {
			assert.Contains(t, l, `stroke="purple"`, i)
		} else {
			assert.NotContains(t, l, `stroke="purple"`, i)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterErrors(t *testing.T) {
	t.Parallel()

	res := triangle(t)
	assert.Error(t, render.Text(failingWriter{}, res.Steps[0]))
	assert.Error(t, render.Summary(failingWriter{}, res))
	assert.Error(t, render.Encode(failingWriter{}, res.Steps, render.FormatText))
	assert.Error(t, render.Encode(failingWriter{}, res.Steps, render.FormatJSON))
	assert.Error(t, render.SVG(failingWriter{}, res.Steps[0]))
}
