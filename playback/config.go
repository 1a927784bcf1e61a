package playback

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/blossomtrace/blossom"
)

const (
	// MinInterval is the shortest accepted auto-step interval.
	MinInterval = 100 * time.Millisecond

	// DefaultInterval is used when Config.Interval is zero.
	DefaultInterval = time.Second
)

var (
	// ErrNoSteps is returned by New for an empty trace.
	ErrNoSteps = errors.New("playback: no steps to play")

	// ErrIntervalTooShort is returned by New for an interval under MinInterval.
	ErrIntervalTooShort = errors.New("playback: interval too short")
)

// Config encapsulates the settings for a Player.
type Config struct {
	// The recorded trace to play.
	Steps []blossom.Step

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The time between two consecutive steps. Zero selects DefaultInterval.
	Interval time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error

	if len(cfg.Steps) == 0 {
		err = multierror.Append(err, ErrNoSteps)
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}

	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}

	if cfg.Interval < MinInterval {
		err = multierror.Append(err, fmt.Errorf("%w: %s < %s", ErrIntervalTooShort, cfg.Interval, MinInterval))
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
