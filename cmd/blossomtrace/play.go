package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/playback"
	"github.com/katalvlaran/blossomtrace/render"
)

func newPlayCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Replay the step trace one step per interval",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newPlayE(ctx, input),
	}
	cmd.Flags().DurationVarP(&input.interval, "interval", "i", playback.DefaultInterval,
		fmt.Sprintf("time between steps, at least %s", playback.MinInterval))

	return cmd
}

func newPlayE(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, res, err := input.trace(cmd, args)
		if err != nil {
			return err
		}

		player, err := playback.New(playback.Config{
			Steps:    res.Steps,
			Clock:    input.clock,
			Interval: cfg.Interval,
			Logger:   log,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cursor := player.Cursor()

		return player.Play(ctx, func(s blossom.Step) error {
			if _, err := fmt.Fprintf(out, "== %s ==\n", cursor); err != nil {
				return err
			}

			return render.Text(out, s)
		})
	}
}
