// Package route resolves the chain of relations a relevance signal follows
// from a source network to a destination network.
//
// What
//
//   - Resolve returns a Path: an ordered list of Steps, each traversing one
//     relation either as declared (rows → columns) or reversed (through its
//     transpose).
//   - A relation directly linking src and dst always wins (single step).
//   - Otherwise a breadth-first search over the network multigraph finds a
//     chain with the fewest hops. Intra-network relations are never hops.
//   - src == dst yields the node set's first intra relation as a single step,
//     or an empty (identity) path when it has none.
//
// Determinism
//
//	Relations incident to a node set are expanded in declaration order and a
//	node set keeps the first relation that reached it, so equal-length
//	alternatives always resolve to the earliest-declared relations. The same
//	graph and endpoints always produce the same Path.
//
// Complexity (N = node sets, R = relations)
//
//   - Time:   O(N + R)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrUnknownNetwork  if src or dst is not a node set id (matches ErrNoPath).
//   - ErrNoPath          if src and dst lie in different components.
//   - ErrOptionViolation for invalid options.
package route
