package playback

import (
	"context"
	"fmt"

	"github.com/katalvlaran/blossomtrace/blossom"
)

// Player advances a Cursor on a timer, one step per interval.
type Player struct {
	cfg    Config
	cursor *Cursor
}

// New validates cfg and returns a Player positioned at the first step.
func New(cfg Config) (*Player, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("playback: config validation failed: %w", err)
	}

	return &Player{cfg: cfg, cursor: NewCursor(cfg.Steps)}, nil
}

// Cursor exposes the playback position for manual stepping between or
// instead of Play calls.
func (p *Player) Cursor() *Cursor { return p.cursor }

// Play calls fn with the current step, then with each following step one
// interval apart. It returns nil once the final step has been shown or the
// context is cancelled, and fn's error if fn fails.
//
// Play resumes from the cursor position; a cursor already at the end shows
// the last step and returns at once.
func (p *Player) Play(ctx context.Context, fn func(blossom.Step) error) error {
	log := p.cfg.Logger.WithField("interval", p.cfg.Interval.String())
	log.WithField("from", p.cursor.Index()).Debug("playback started")
	defer log.WithField("at", p.cursor.Index()).Debug("playback stopped")

	for {
		step, _ := p.cursor.Current()
		if err := fn(step); err != nil {
			return err
		}
		if p.cursor.AtEnd() {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-p.cfg.Clock.After(p.cfg.Interval):
			p.cursor.Next()
		}
	}
}
