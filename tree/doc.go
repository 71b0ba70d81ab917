// Package tree builds and maintains the rooted tree of buckets that the
// rest of this module rebalances.
//
// A Tree is constructed once from a flat sequence of Records via BuildTree,
// which performs three passes — node creation, edge wiring, and depth
// computation plus invariant validation — then normalizes the optimal-ratio
// and current-ratio attributes so that every parent's direct children sum
// to 1. After construction, a Tree's input attributes (CurrentValue,
// OptimalRatio) are frozen; only AmountToAdd (on every node, the root
// included), ResultsValue, and ResultsRatio are written later, by
// graphsolver.
//
// The Tree owns all node storage; callers hold labels (plain strings) and
// query the tree for attributes. Reads are safe from multiple goroutines;
// the documented contract is still that concurrent mutation is the
// caller's responsibility (see the module root doc comment).
package tree
