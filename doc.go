// Package blossomtrace computes maximum-cardinality matchings on general
// undirected graphs with Edmonds' blossom algorithm and keeps every step.
//
// 🚀 What is blossomtrace?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitives: vertices and edges with stable, caller-chosen IDs
//		• Builders: cycles, paths, stars, wheels, complete and random graphs
//		• Input: plain-text and YAML/JSON graph documents
//		• Engine: Edmonds' blossom algorithm with a replayable Step trace
//		• Output: text, JSON, YAML and SVG renderings of each Step
//		• Playback: a cursor and a timer-driven player over the trace
//
// Layout:
//
//	core/     Graph, Edge and the thread-safe primitives
//	builder/  deterministic graph constructors and presets
//	input/    text and YAML document parsers
//	blossom/  the matching engine and the Step trace
//	layout/   circular vertex placement
//	render/   text, JSON, YAML and SVG encoders
//	playback/ Cursor and Player
//	cmd/blossomtrace the command line front end
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      3
//
//	a triangle: one odd cycle, one blossom, a matching of size 1.
//
//	go install github.com/katalvlaran/blossomtrace/cmd/blossomtrace@latest
package blossomtrace
