// Package allocate computes how to rebalance a hierarchical portfolio of
// "buckets" toward target ratios, given a pending non-negative deposit.
//
// A portfolio is a rooted tree: each node holds a current value, a target
// ratio relative to its siblings, and (for the root, or any node with
// money explicitly assigned to it) an amount pending distribution to its
// children. Three independent concerns compose to solve it:
//
//	tree/          — build, normalize, and validate the bucket tree
//	bucket/        — the shared System/Solution/Solver vocabulary one level
//	                 of a tree speaks when it divides an amount among its
//	                 children
//	unconstrained/ — closed-form solver, may return negative deltas
//	                 (withdrawals)
//	constrained/   — closed-form solver restricted to non-negative deltas
//	montecarlo/    — deterministic greedy stepping solver, never negative,
//	                 used directly or as an automatic fallback
//	graphsolver/   — drives a chosen bucket.Solver bottom-up across an
//	                 entire tree.Tree to a fixed point
//
// Typical use:
//
//	t, err := tree.BuildTree(records)
//	if err != nil {
//	    return err
//	}
//	solved, err := graphsolver.Solve(t, constrained.Solver{})
//
// This module is a pure computation library: parsing YAML/CSV input,
// rendering an ASCII tree, or formatting currency strings are the job of
// an external caller, not this package. Record is the seam such a caller
// populates before calling BuildTree.
//
// Every call is single-threaded and synchronous. A tree.Tree guards its maps
// with a lock so concurrent reads are safe, but concurrent mutation of a tree
// is the caller's responsibility.
package allocate
