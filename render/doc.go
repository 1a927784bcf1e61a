// Package render turns matching traces into text, JSON, YAML and SVG.
//
//   - Text(w, step): one human-readable block per step.
//   - Encode(w, steps, format): the whole trace as text, indented JSON
//     (encoding/json) or YAML (gopkg.in/yaml.v3). Labels encode as
//     "OUTER"/"INNER"/"UNLABELED" in both structured formats.
//   - Summary(w, result): final matching and exposed vertices.
//   - SVG(w, step, layoutOpts...): the step drawn on the circular layout
//     with github.com/ajstarks/svgo.
//
// Errors: ErrUnknownFormat for an unsupported Format; layout option errors
// from SVG; writer errors are returned as is.
package render
