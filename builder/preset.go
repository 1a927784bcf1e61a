// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// preset.go - compact textual fixtures for the command line.
//
// Grammar (name:args):
//
//	cycle:N   path:N   star:N   wheel:N   complete:N
//	bipartite:AxB
//	random:N:P:SEED
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/blossomtrace/core"
)

// Presets lists the preset names accepted by Preset, for help output.
var Presets = []string{"cycle:N", "path:N", "star:N", "wheel:N", "complete:N", "bipartite:AxB", "random:N:P:SEED"}

// Preset parses def and builds the described graph. bopts are applied
// before any option implied by def (random presets add WithSeed).
//
// Errors: ErrUnknownPreset for an unknown name or malformed arguments,
// otherwise whatever the constructor returns.
func Preset(def string, bopts ...BuilderOption) (*core.Graph, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(def), ":")
	cons, extra, err := parsePreset(strings.ToLower(name), args)
	if err != nil {
		return nil, fmt.Errorf("Preset(%q): %w", def, err)
	}

	return BuildGraph(nil, append(bopts, extra...), cons)
}

func parsePreset(name, args string) (Constructor, []BuilderOption, error) {
	switch name {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := presetInt(args)
		if err != nil {
			return nil, nil, err
		}
		ctors := map[string]func(int) Constructor{
			"cycle": Cycle, "path": Path, "star": Star, "wheel": Wheel, "complete": Complete,
		}

		return ctors[name](n), nil, nil

	case "bipartite":
		a, b, ok := strings.Cut(args, "x")
		if !ok {
			return nil, nil, fmt.Errorf("want AxB, got %q: %w", args, ErrUnknownPreset)
		}
		n1, err := presetInt(a)
		if err != nil {
			return nil, nil, err
		}
		n2, err := presetInt(b)
		if err != nil {
			return nil, nil, err
		}

		return CompleteBipartite(n1, n2), nil, nil

	case "random":
		parts := strings.Split(args, ":")
		if len(parts) != 3 {
			return nil, nil, fmt.Errorf("want N:P:SEED, got %q: %w", args, ErrUnknownPreset)
		}
		n, err := presetInt(parts[0])
		if err != nil {
			return nil, nil, err
		}
		p, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("probability %q: %w", parts[1], ErrUnknownPreset)
		}
		seed, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("seed %q: %w", parts[2], ErrUnknownPreset)
		}

		return RandomSparse(n, p), []BuilderOption{WithSeed(seed)}, nil
	}

	return nil, nil, fmt.Errorf("name %q (known: %s): %w", name, strings.Join(Presets, ", "), ErrUnknownPreset)
}

func presetInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", s, ErrUnknownPreset)
	}

	return n, nil
}
