// Package network holds the heterogeneous network model: named node sets and
// the non-negative relation matrices connecting pairs of them.
//
// What
//
//   - NodeSet: an indexed collection of entities (indices 0..Size-1, fixed at
//     load) with an optional label table for name lookup.
//   - Relation: a matrix of shape (|Src|, |Dst|). Src == Dst marks an
//     intra-network adjacency, which must be square.
//   - Graph: node sets and relations in declaration order. It forms an
//     undirected multigraph whose vertices are node sets and whose edges are
//     relations. There is no mutation API; a Graph is safe for concurrent
//     readers once built.
//
// Loading
//
//   - Builder validates and assembles a Graph programmatically.
//   - Decode / FileLoader read the YAML (or JSON) network file format,
//     transparently gunzipping compressed files.
//   - Cache collapses repeated and concurrent loads of the same file content.
//
// Memory-saving mode
//
//	Build(true) keeps every relation in CSR form; rows and columns are only
//	decompressed on demand. Build(false) densifies relations (gonum storage).
//	Both modes yield numerically equivalent graphs.
//
// Errors
//
//   - ErrDataLoad wraps every loader failure (missing file, decode error,
//     inconsistent shapes), so callers need a single errors.Is check.
//   - Builder failures carry the more specific sentinels below, all of which
//     are also reported through ErrDataLoad by the loader.
package network
