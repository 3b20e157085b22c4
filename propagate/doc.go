// Package propagate pushes a relevance signal from seed entities of a source
// network to every entity of a destination network and ranks the result.
//
// Hop transform
//
//	For each step of a route.Path the current vector v over the step's From
//	node set becomes a vector v' over its To node set:
//
//	    v'[j] = aggregate_i v[i]·M[i][j]
//
//	where M is the step's oriented relation and the aggregation and
//	normalization are chosen by a named combine policy:
//
//	    sum        Σ v[i]·M[i][j]
//	    row        Σ v[i]·M[i][j] / r_i              (row-stochastic)
//	    average    Σ v[i]·M[i][j] / c_j              (weighted average; alias mean)
//	    symmetric  Σ v[i]·M[i][j] / √(r_i·c_j)
//	    pearson    symmetric, then divided by the hop maximum (scores in [0,1])
//
//	r_i and c_j are the row and column masses of M. A zero mass contributes
//	zero, never NaN.
//
// Diffusion
//
//	With WithDiffusion(alpha, ...) the signal is also smoothed inside every
//	node set that owns an intra-network relation W, at the source and after
//	each inter-network hop:
//
//	    v ← (1-α)·v₀ + α·Ŵᵀv        until ‖Δv‖₁ < tol or maxIter rounds
//
//	with Ŵ the symmetric normalization of W. Diffusion is off by default.
//
// Numeric contract
//
//	Inputs are non-negative, so every score is finite and ≥ 0. An all-zero
//	seed, or a hop that reaches no entity, yields an all-zero ScoreVector of
//	the destination size; that is a valid "no relevance" answer, not an error.
//	Seed indices are validated even when every weight is zero.
//
// Ranking
//
//	Rank orders a ScoreVector by descending score, breaking ties by ascending
//	entity index, and optionally truncates it.
package propagate
