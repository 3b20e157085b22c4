// Package prophnet ranks entities of one biological network by relevance
// propagated from query entities of another, through the relation matrices
// that connect heterogeneous networks (drugs, targets, diseases, genes ...).
//
// What is inside?
//
//	matrix/     - the small linear-algebra seam: Dense (gonum) and CSR storage
//	network/    - node sets, relations and the validated, read-only Graph;
//	              YAML/gzip loader and a fingerprinting cache
//	route/      - fewest-hop relation chain between two networks (BFS)
//	propagate/  - hop transforms (combine policies), diffusion and ranking
//	runner/     - request validation and the load → propagate → save pipeline
//	config/     - INI/YAML config, PROPH_* environment and flag overlay
//	logging/    - injected Logger interface and console backend
//	cmd/prophrun - the command-line entry point
//
// Quick picture:
//
//	drugs ──drug-target── targets ──disease-target── diseases
//	  └─drug-similarity─┘
//
// A query on drugs reaches diseases in two hops; the adjacency inside drugs
// is only used for optional diffusion.
//
//	go install github.com/katalvlaran/prophnet/cmd/prophrun@latest
package prophnet
