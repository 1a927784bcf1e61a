package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blossomtrace/layout"
	"github.com/katalvlaran/blossomtrace/render"
)

func newLayoutCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the circular vertex positions used for drawing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newLayoutE(input),
	}
	cmd.Flags().StringVarP(&input.format, "format", "o", "text", "output format: text, json or yaml")
	cmd.Flags().Float64Var(&input.size, "size", layout.DefaultSize, "canvas size")

	return cmd
}

func newLayoutE(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, _, err := input.settings(cmd.Flags(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		g, err := input.loadGraph(cmd, args)
		if err != nil {
			return err
		}
		points, err := layout.Circle(g.Vertices(), layout.WithSize(input.size))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		f, _ := render.ParseFormat(cfg.Format)
		switch f {
		case render.FormatJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(points)
		case render.FormatYAML:
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err = enc.Encode(points); err != nil {
				return err
			}

			return enc.Close()
		default:
			for _, p := range points {
				if _, err = fmt.Fprintf(out, "%s\t%.2f\t%.2f\n", p.ID, p.X, p.Y); err != nil {
					return err
				}
			}

			return nil
		}
	}
}
