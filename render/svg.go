package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/core"
	"github.com/katalvlaran/blossomtrace/layout"
)

// Stroke and fill palette of the SVG view.
const (
	colorEdge        = "#b0bec5"
	colorMatched     = "#d32f2f"
	colorPath        = "#ff5722"
	colorBlossom     = "purple"
	colorHighlight   = "blue"
	colorOuter       = "#4caf50"
	colorInner       = "#ff9800"
	colorUnlabeled   = "#90a4ae"
	colorNodeStroke  = "#263238"
	colorNodeCaption = "#ffffff"
)

// SVG draws one step on the circular layout.
//
// Edges: matched edges are thick red, augmenting-path edges orange, the
// detected odd cycle purple, and the step's highlighted edge blue; later
// rules win. Only consecutive vertices of the highlighted path (closed into
// a ring for BLOSSOM_DETECTED) count as path or cycle edges, so chords stay
// plain.
// Vertices: filled by label (OUTER green, INNER orange, UNLABELED grey),
// ringed red when exposed, orange when on the augmenting path and purple
// when they belong to the blossom being contracted or expanded.
//
// The frame is rendered in memory first; w sees a single write.
func SVG(w io.Writer, s blossom.Step, opts ...layout.Option) error {
	o, err := layout.Resolve(opts...)
	if err != nil {
		return err
	}
	pts, err := layout.Circle(s.Graph.Vertices, opts...)
	if err != nil {
		return err
	}
	pos := layout.Index(pts)

	matched := make(map[[2]string]bool, len(s.Matching))
	for _, e := range s.Matching {
		matched[pairOf(e)] = true
	}
	onPath := make(map[string]bool, len(s.HighlightPath))
	for _, v := range s.HighlightPath {
		onPath[v] = true
	}
	exposed := make(map[string]bool, len(s.Exposed))
	for _, v := range s.Exposed {
		exposed[v] = true
	}

	pathStep := s.Type == blossom.StepFoundAugmentingPath || s.Type == blossom.StepAugment
	cycleStep := s.Type == blossom.StepBlossomDetected
	memberStep := s.Type == blossom.StepContract || s.Type == blossom.StepExpand
	segments := pathSegments(s.HighlightPath, cycleStep)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(o.Size, o.Size, 0, 0, o.Size, o.Size)
	canvas.Title(fmt.Sprintf("#%d %s: %s", s.ID, s.Type, s.Description))

	for _, e := range s.Graph.Edges {
		u, okU := pos[e.From]
		v, okV := pos[e.To]
		if !okU || !okV || e.IsLoop() {
			continue
		}
		key := pairOf(e)
		stroke, width := colorEdge, 1.5
		if matched[key] {
			stroke, width = colorMatched, 3
		}
		if pathStep && segments[key] {
			stroke, width = colorPath, 4
		}
		if cycleStep && segments[key] {
			stroke, width = colorBlossom, 4
			if matched[key] {
				width = 5
			}
		}
		if h := s.HighlightEdge; h != nil && (h.ID == e.ID || pairOf(*h) == key) {
			stroke, width = colorHighlight, 4
		}
		canvas.Line(u.X, u.Y, v.X, v.Y, attr("stroke", stroke), attr("stroke-width", width))
	}

	for _, p := range pts {
		fill := colorUnlabeled
		switch s.Labels[p.ID] {
		case blossom.Outer:
			fill = colorOuter
		case blossom.Inner:
			fill = colorInner
		}
		stroke, width := colorNodeStroke, 1.5
		if exposed[p.ID] {
			stroke, width = colorMatched, 3
		}
		if pathStep && onPath[p.ID] {
			stroke, width = colorPath, 3
		}
		if memberStep && onPath[p.ID] {
			stroke, width = colorBlossom, 3
		}
		canvas.Group(`class="vertex"`)
		canvas.Circle(p.X, p.Y, o.NodeRadius, attr("fill", fill), attr("stroke", stroke), attr("stroke-width", width))
		canvas.Text(p.X, p.Y+4, p.ID, `text-anchor="middle"`, `font-size="12"`, attr("fill", colorNodeCaption))
		canvas.Gend()
	}
	canvas.End()

	_, err = w.Write(buf.Bytes())

	return err
}

// pathSegments collects the unordered pairs of consecutive vertices of path,
// plus the last-to-first pair when closed.
func pathSegments(path []string, closed bool) map[[2]string]bool {
	seg := make(map[[2]string]bool, len(path))
	for i := 1; i < len(path); i++ {
		seg[pairOf(core.Edge{From: path[i-1], To: path[i]})] = true
	}
	if closed && len(path) > 2 {
		seg[pairOf(core.Edge{From: path[len(path)-1], To: path[0]})] = true
	}

	return seg
}

// attr formats one SVG attribute for svgo's variadic style arguments.
func attr(name string, value any) string {
	return fmt.Sprintf(`%s="%v"`, name, value)
}

// pairOf is the unordered endpoint pair of e.
func pairOf(e core.Edge) [2]string {
	if e.To < e.From {
		return [2]string{e.To, e.From}
	}

	return [2]string{e.From, e.To}
}
