// Package input turns user-supplied graph descriptions into validated
// core.Graph values for the matching engine.
//
// Formats
//
//   - Text, two fields (ParseText): a vertex list separated by whitespace or
//     commas, and an edge list with one "u v" (or "u v id") per line.
//   - Text, one stream (ParseDocument): the first content line lists the
//     vertices, every further line is an edge.
//   - YAML or JSON (ParseYAML): {vertices: [...], edges: [{id, u, v}]}.
//
// "#" starts a comment in the text forms. Generated edge ids are e0, e1, ...
// in declaration order.
//
// Errors
//
// Validation never stops at the first problem: every duplicate vertex,
// malformed line and unknown endpoint is collected into one
// *multierror.Error. Each entry wraps a sentinel (ErrNoVertices,
// ErrMalformedEdge, ErrUnknownVertex, ErrDuplicateVertex,
// ErrDuplicateEdgeID), so errors.Is works on the aggregate.
//
// Usage
//
//	g, err := input.ParseText("1 2 3", "1 2\n2 3\n3 1")
//	if err != nil {
//	    return err
//	}
//	e, err := blossom.FromGraph(g)
package input
