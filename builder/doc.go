// Package builder assembles deterministic core.Graph fixtures from
// functional options and topology constructors. It feeds the matching
// engine's tests (random graphs checked against brute force) and the
// command line's --preset flag.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator.
//   - Constructors: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     RandomSparse.
//   - ID schemes (IDFn): DefaultIDFn, OneBasedIDFn, SymbolIDFn,
//     ExcelColumnIDFn, AlphanumericIDFn, HexIDFn, PrefixIDFn; IDScheme(name)
//     resolves them by name.
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix and
//     shorthands.
//   - Preset(def): "cycle:5", "bipartite:2x3", "random:10:0.3:42", ...
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed give identical vertex and
//     edge declaration order, hence identical matching traces.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil functions.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrUnknownPreset.
package builder
