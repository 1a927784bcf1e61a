// Package blossom defines the trace types, labels and sentinel errors of the
// instrumented matching engine.
package blossom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrTooManyVertices is returned by New when the vertex count exceeds
	// the configured capacity. No step is produced.
	ErrTooManyVertices = errors.New("blossom: too many vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("blossom: invalid option supplied")

	// ErrGraphNil is returned by FromGraph for a nil graph.
	ErrGraphNil = errors.New("blossom: graph is nil")

	// ErrBrokenInvariant signals a defect in the alternating-tree
	// bookkeeping (e.g. LCA found no common base). It aborts Run.
	ErrBrokenInvariant = errors.New("blossom: internal invariant violated")
)

// Label is the per-phase tree label of a vertex.
type Label uint8

const (
	// Unlabeled: not reached by the current search.
	Unlabeled Label = iota
	// Outer: even distance from the root; explored from.
	Outer
	// Inner: odd distance from the root; reached by a non-matching edge.
	Inner
)

// String returns the canonical upper-case name.
func (l Label) String() string {
	switch l {
	case Outer:
		return "OUTER"
	case Inner:
		return "INNER"
	default:
		return "UNLABELED"
	}
}

// MarshalText encodes the label by name for JSON and YAML output.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a label name.
func (l *Label) UnmarshalText(b []byte) error {
	switch string(b) {
	case "UNLABELED":
		*l = Unlabeled
	case "OUTER":
		*l = Outer
	case "INNER":
		*l = Inner
	default:
		return fmt.Errorf("blossom: unknown label %q", string(b))
	}

	return nil
}

// StepType names the event that produced a Step.
type StepType string

// Step types, in the order they typically appear in a trace.
const (
	StepInit                StepType = "INIT"
	StepStartBFS            StepType = "START_BFS"
	StepBFSSearch           StepType = "BFS_SEARCH"
	StepBlossomDetected     StepType = "BLOSSOM_DETECTED"
	StepContract            StepType = "CONTRACT"
	StepExpand              StepType = "EXPAND"
	StepFoundAugmentingPath StepType = "FOUND_AUGMENTING_PATH"
	StepAugment             StepType = "AUGMENT"
	StepDone                StepType = "DONE"
)

// Blossom is the trace view of a live contracted odd cycle.
type Blossom struct {
	ID      string   `json:"id" yaml:"id"`
	Base    string   `json:"base" yaml:"base"`
	Members []string `json:"members" yaml:"members"`
}

// GraphSnapshot is the full vertex and edge set as declared.
type GraphSnapshot struct {
	Vertices []string    `json:"vertices" yaml:"vertices"`
	Edges    []core.Edge `json:"edges" yaml:"edges"`
}

// Step is an immutable snapshot of the engine taken right after an event.
//
// Every collection is owned by the Step: mutating the engine afterwards (or
// mutating another Step) never changes it.
//
// Parent holds an entry only for vertices that have a tree parent in the
// current phase; roots and unreached vertices are absent.
type Step struct {
	ID            int               `json:"id" yaml:"id"`
	Type          StepType          `json:"type" yaml:"type"`
	Description   string            `json:"description" yaml:"description"`
	Graph         GraphSnapshot     `json:"graph" yaml:"graph"`
	Matching      []core.Edge       `json:"matching" yaml:"matching"`
	Labels        map[string]Label  `json:"labels" yaml:"labels"`
	Exposed       []string          `json:"exposed" yaml:"exposed"`
	Parent        map[string]string `json:"parent" yaml:"parent"`
	Blossoms      []Blossom         `json:"blossoms" yaml:"blossoms"`
	HighlightPath []string          `json:"highlightPath,omitempty" yaml:"highlightPath,omitempty"`
	HighlightEdge *core.Edge        `json:"highlightEdge,omitempty" yaml:"highlightEdge,omitempty"`
	BlossomID     string            `json:"blossomId,omitempty" yaml:"blossomId,omitempty"`
}

// Result is the outcome of one Run.
//   - Steps: the full trace, INIT first and DONE last.
//   - Matching: the final matching edges, ordered by the lower endpoint's
//     declaration index.
//   - Size: len(Matching).
//   - Augmentations: number of successful phases (equals Size).
type Result struct {
	Steps         []Step
	Matching      []core.Edge
	Size          int
	Augmentations int
}
