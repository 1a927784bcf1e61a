package playback

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/blossom"
)

// Cursor is a position in a recorded trace. The index is always clamped to
// [0, len-1]; on an empty trace it stays 0 and Current reports false.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	steps []blossom.Step
	idx   int
}

// NewCursor returns a Cursor at the first step of steps.
func NewCursor(steps []blossom.Step) *Cursor {
	return &Cursor{steps: steps}
}

// Len is the number of steps.
func (c *Cursor) Len() int { return len(c.steps) }

// Index is the current 0-based position.
func (c *Cursor) Index() int { return c.idx }

// Current returns the step under the cursor, or false for an empty trace.
func (c *Cursor) Current() (blossom.Step, bool) {
	if len(c.steps) == 0 {
		return blossom.Step{}, false
	}

	return c.steps[c.idx], true
}

// Next moves one step forward and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.idx++

	return true
}

// Prev moves one step back and reports whether it moved.
func (c *Cursor) Prev() bool {
	if c.idx == 0 {
		return false
	}
	c.idx--

	return true
}

// Seek jumps to i, clamped to the valid range, and returns the new index.
func (c *Cursor) Seek(i int) int {
	switch {
	case len(c.steps) == 0 || i < 0:
		c.idx = 0
	case i >= len(c.steps):
		c.idx = len(c.steps) - 1
	default:
		c.idx = i
	}

	return c.idx
}

// AtEnd reports whether the cursor is on the last step (or the trace is empty).
func (c *Cursor) AtEnd() bool {
	return c.idx >= len(c.steps)-1
}

// String renders the 1-based position, e.g. "Step 3 / 14".
func (c *Cursor) String() string {
	if len(c.steps) == 0 {
		return "Step 0 / 0"
	}

	return fmt.Sprintf("Step %d / %d", c.idx+1, len(c.steps))
}
