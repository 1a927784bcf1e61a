package blossom

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxVertices is the capacity applied when WithMaxVertices is not used.
const DefaultMaxVertices = 1 << 10

// Option configures the engine via functional arguments.
// If an Option is invalid (e.g. negative capacity), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customize a run.
type Options struct {
	// MaxVertices caps the vertex count accepted by New.
	// A value of 0 explicitly disables the cap.
	MaxVertices int

	// OnStep is called with every Step as soon as it is recorded, in
	// trace order. The Step is already detached from engine state.
	OnStep func(Step)

	// Logger receives Debug-level progress entries.
	Logger *logrus.Entry

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxVertices = DefaultMaxVertices
//   - no-op OnStep hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxVertices: DefaultMaxVertices,
		OnStep:      func(Step) {},
		Logger:      logrus.NewEntry(&logrus.Logger{Out: io.Discard}),
	}
}

// WithMaxVertices sets the vertex capacity.
//
//	n > 0: reject graphs with more than n vertices
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVertices cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVertices = n
	}
}

// WithOnStep registers a callback that streams steps as they are recorded.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger sets the logger used for Debug-level progress entries.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
