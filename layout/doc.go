// Package layout computes the circular drawing positions used by the trace
// renderers: vertex i of n sits at angle 2πi/n on a ring centred on a square
// canvas, with radius min(size/2 - margin, maxRadius).
//
// The layout depends only on the vertex order, so every Step of a trace
// shares one set of positions.
//
//	pts, err := layout.Circle([]string{"1", "2", "3"}, layout.WithSize(600))
package layout
