package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blossomtrace/blossom"
	"github.com/katalvlaran/blossomtrace/builder"
	"github.com/katalvlaran/blossomtrace/core"
	"github.com/katalvlaran/blossomtrace/input"
)

const appName = "blossomtrace"

var (
	errNoGraph       = errors.New("no graph given: pass a file, - for stdin, or --preset")
	errGraphConflict = errors.New("a graph file and --preset are mutually exclusive")
)

// Input holds the parsed command line.
type Input struct {
	configPath  string
	preset      string
	ids         string
	maxVertices int
	verbose     bool

	format  string
	summary bool
	svgDir  string

	interval time.Duration

	size float64

	clock clock.Clock
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Trace Edmonds' blossom algorithm for maximum matching step by step",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&input.preset, "preset", "p", "", fmt.Sprintf("generate the graph instead of reading it, one of %v", builder.Presets))
	rootCmd.PersistentFlags().StringVar(&input.ids, "ids", "", "vertex ID scheme for --preset (decimal, one, symbol, excel, alnum, hex, prefix:<p>)")
	rootCmd.PersistentFlags().IntVar(&input.maxVertices, "max-vertices", blossom.DefaultMaxVertices, "largest accepted graph, 0 disables the check")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newRunCommand(input),
		newPlayCommand(ctx, input),
		newLayoutCommand(input),
	)

	return rootCmd
}

// loadGraph reads the graph named by args or built by --preset.
func (i *Input) loadGraph(cmd *cobra.Command, args []string) (*core.Graph, error) {
	switch {
	case i.preset != "" && len(args) > 0:
		return nil, errGraphConflict
	case i.preset != "":
		idFn, err := builder.IDScheme(i.ids)
		if err != nil {
			return nil, err
		}

		return builder.Preset(i.preset, builder.WithIDScheme(idFn))
	case len(args) == 0:
		return nil, errNoGraph
	case args[0] == input.Stdin:
		return input.Read(cmd.InOrStdin(), "")
	default:
		return input.Load(args[0])
	}
}

// trace resolves the settings, loads the graph and runs the engine on it.
func (i *Input) trace(cmd *cobra.Command, args []string) (Config, *logrus.Entry, *blossom.Result, error) {
	cfg, log, err := i.settings(cmd.Flags(), cmd.ErrOrStderr())
	if err != nil {
		return Config{}, nil, nil, err
	}

	g, err := i.loadGraph(cmd, args)
	if err != nil {
		return Config{}, nil, nil, err
	}
	log.WithField("vertices", g.VertexCount()).WithField("edges", g.EdgeCount()).Debug("graph loaded")

	engine, err := blossom.FromGraph(g,
		blossom.WithMaxVertices(cfg.MaxVertices),
		blossom.WithLogger(log),
	)
	if err != nil {
		return Config{}, nil, nil, err
	}

	res, err := engine.Run()
	if err != nil {
		return Config{}, nil, nil, err
	}
	log.WithField("size", res.Size).WithField("steps", len(res.Steps)).Info("matching computed")

	return cfg, log, res, nil
}
