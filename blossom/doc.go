// Package blossom computes a maximum-cardinality matching on a general
// (not necessarily bipartite) undirected graph with Edmonds' blossom
// algorithm, and records a complete, ordered, replayable trace of every
// algorithmic event.
//
// What
//
//   - One phase per exposed root: grow an alternating tree by BFS, labeling
//     vertices OUTER (even depth) or INNER (odd depth).
//   - An edge between two OUTER vertices of different blossoms closes an odd
//     cycle: its base is found by a least-common-base walk and the cycle is
//     contracted into a super-vertex (lazy: only Base pointers move).
//   - Reaching an exposed vertex yields an augmenting path; flipping it grows
//     the matching by exactly one. Blossoms on the path are expanded first.
//   - Every event is captured as an immutable Step:
//     INIT, START_BFS, BFS_SEARCH, BLOSSOM_DETECTED, CONTRACT, EXPAND,
//     FOUND_AUGMENTING_PATH, AUGMENT, DONE.
//
// Why
//
//   - A matching library answers "what"; the trace answers "how", step by
//     step, for visualisers, teaching material and regression goldens.
//
// Determinism
//
//	Vertices are scanned in caller order and neighbours in edge declaration
//	order. Two runs on identical input produce identical Step sequences.
//
// Input policy
//
//	Self-loops are dropped. For parallel edges the first declared one is
//	authoritative for adjacency and for the matching edges reported in
//	Steps. Validation of IDs (duplicates, unknown endpoints) belongs to the
//	caller; see package core and package input.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V) successful phases, each O(V·E) worst case with trace
//     snapshots; a snapshot costs O(V + E).
//   - Memory: O(V + E) engine state plus O(V + E) per recorded Step.
//
// Usage
//
//	res, err := blossom.Run(
//	    []string{"1", "2", "3"},
//	    []core.Edge{{ID: "e0", From: "1", To: "2"}, {ID: "e1", From: "2", To: "3"}, {ID: "e2", From: "3", To: "1"}},
//	    blossom.WithOnStep(func(s blossom.Step) { fmt.Println(s.Type, s.Description) }),
//	)
//	if err != nil {
//	    // ErrTooManyVertices, ErrOptionViolation or ErrBrokenInvariant
//	}
//	fmt.Println(res.Size) // 1
//
// Options
//
//   - DefaultOptions(): DefaultMaxVertices cap, no-op hook, discard logger.
//   - WithMaxVertices(n): capacity check in New (0 disables, <0 invalid).
//   - WithOnStep(fn):     stream steps as they are recorded.
//   - WithLogger(entry):  logrus entry for Debug progress output.
//
// Errors
//
//   - ErrTooManyVertices  vertex count above the cap; no step is produced.
//   - ErrOptionViolation  invalid Option.
//   - ErrGraphNil         FromGraph(nil).
//   - ErrBrokenInvariant  tree bookkeeping inconsistent; Run aborts.
package blossom
