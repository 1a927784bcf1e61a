// Package playback steps through a recorded matching trace, by hand with a
// Cursor or on a timer with a Player.
//
// The Player takes its time from a juju/clock Clock so tests can drive it
// with testclock; the interval must be at least MinInterval (100ms) and
// defaults to one second. Playback stops by itself on the final step.
//
//	p, err := playback.New(playback.Config{Steps: res.Steps, Interval: 500 * time.Millisecond})
//	if err != nil {
//	    return err
//	}
//	err = p.Play(ctx, func(s blossom.Step) error { return render.Text(os.Stdout, s) })
package playback
