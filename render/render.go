package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossomtrace/blossom"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the trace encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format, for flag help.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates s (case-insensitive) as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes steps to w in format f.
//
//   - text: one Text block per step, separated by blank lines.
//   - json: a single indented JSON array.
//   - yaml: a single YAML sequence.
func Encode(w io.Writer, steps []blossom.Step, f Format) error {
	switch f {
	case FormatText:
		for i, s := range steps {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := Text(w, s); err != nil {
				return err
			}
		}

		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if steps == nil {
			steps = []blossom.Step{}
		}

		return enc.Encode(steps)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(steps); err != nil {
			return fmt.Errorf("render: yaml: %w", err)
		}

		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Text writes a human-readable block for one step:
//
//	#9 BLOSSOM_DETECTED
//	  Blossom detected! Edge 3-1 connects two outer nodes. Base vertex: 3.
//	  matching: e0 1-2
//	  exposed:  3
//	  labels:   1=OUTER 2=INNER 3=OUTER
//	  parent:   1<-2 2<-3
//	  blossoms: -
//	  path:     3 2 1
//	  edge:     e2 3-1
//
// Labels and parents follow vertex declaration order; path, edge and
// blossom lines appear only when the step carries them.
func Text(w io.Writer, s blossom.Step) error {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d %s\n", s.ID, s.Type)
	fmt.Fprintf(&b, "  %s\n", s.Description)

	matching := make([]string, len(s.Matching))
	for i, e := range s.Matching {
		matching[i] = fmt.Sprintf("%s %s-%s", e.ID, e.From, e.To)
	}
	fmt.Fprintf(&b, "  matching: %s\n", orDash(strings.Join(matching, ", ")))
	fmt.Fprintf(&b, "  exposed:  %s\n", orDash(strings.Join(s.Exposed, " ")))

	labels := make([]string, 0, len(s.Graph.Vertices))
	var parents []string
	for _, v := range s.Graph.Vertices {
		labels = append(labels, v+"="+s.Labels[v].String())
		if p, ok := s.Parent[v]; ok {
			parents = append(parents, v+"<-"+p)
		}
	}
	fmt.Fprintf(&b, "  labels:   %s\n", orDash(strings.Join(labels, " ")))
	fmt.Fprintf(&b, "  parent:   %s\n", orDash(strings.Join(parents, " ")))

	if len(s.Blossoms) > 0 {
		bl := make([]string, len(s.Blossoms))
		for i, x := range s.Blossoms {
			bl[i] = fmt.Sprintf("%s{base %s: %s}", x.ID, x.Base, strings.Join(x.Members, " "))
		}
		fmt.Fprintf(&b, "  blossoms: %s\n", strings.Join(bl, ", "))
	}
	if len(s.HighlightPath) > 0 {
		fmt.Fprintf(&b, "  path:     %s\n", strings.Join(s.HighlightPath, " "))
	}
	if s.HighlightEdge != nil {
		fmt.Fprintf(&b, "  edge:     %s %s-%s\n", s.HighlightEdge.ID, s.HighlightEdge.From, s.HighlightEdge.To)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Summary writes the final matching of res:
//
//	maximum matching: size 2, 2 augmentations, 17 steps
//	  e0 1-2
//	  e2 3-4
//	exposed: 5
func Summary(w io.Writer, res *blossom.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "maximum matching: size %d, %d augmentations, %d steps\n",
		res.Size, res.Augmentations, len(res.Steps))
	for _, e := range res.Matching {
		fmt.Fprintf(&b, "  %s %s-%s\n", e.ID, e.From, e.To)
	}
	var exposed []string
	if n := len(res.Steps); n > 0 {
		exposed = res.Steps[n-1].Exposed
	}
	fmt.Fprintf(&b, "exposed: %s\n", orDash(strings.Join(exposed, " ")))

	_, err := io.WriteString(w, b.String())

	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
