package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/layout"
	"github.com/katalvlaran/blossomtrace/render"
)

func newRunCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Compute a maximum matching and print the full step trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newRunE(input),
	}
	cmd.Flags().StringVarP(&input.format, "format", "o", "text", "trace format: text, json or yaml")
	cmd.Flags().BoolVar(&input.summary, "summary", false, "print only the final matching")
	cmd.Flags().StringVar(&input.svgDir, "svg", "", "also write one SVG frame per step into this directory")
	cmd.Flags().Float64Var(&input.size, "size", layout.DefaultSize, "SVG canvas size")

	return cmd
}

func newRunE(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, res, err := input.trace(cmd, args)
		if err != nil {
			return err
		}

		if input.svgDir != "" {
			if err = writeFrames(input.svgDir, res.Steps, layout.WithSize(input.size)); err != nil {
				return err
			}
			log.WithField("dir", input.svgDir).Debug("svg frames written")
		}

		out := cmd.OutOrStdout()
		if input.summary {
			return render.Summary(out, res)
		}

		// validate already accepted the format
		f, _ := render.ParseFormat(cfg.Format)

		return render.Encode(out, res.Steps, f)
	}
}

// writeFrames renders every step to dir/step-NNN.svg, creating dir if needed.
func writeFrames(dir string, steps []blossom.Step, opts ...layout.Option) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	for _, s := range steps {
		if err := writeFrame(filepath.Join(dir, fmt.Sprintf("step-%03d.svg", s.ID)), s, opts...); err != nil {
			return err
		}
	}

	return nil
}

func writeFrame(path string, s blossom.Step, opts ...layout.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("svg: %w", cerr)
		}
	}()

	return render.SVG(f, s, opts...)
}
