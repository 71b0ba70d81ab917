// Package graphsolver drives a bucket.Solver bottom-up over an entire
// tree.Tree, turning each node's pending amount_to_add into a fully
// propagated set of results_value and results_ratio attributes.
//
// Solve repeatedly walks the tree from its deepest bucket-systems up to the
// root, resolving one parent's amount_to_add against its direct children at
// a time and queuing whatever each child receives for the next pass. A
// sign-negation marker on amount_to_add records "already distributed this
// value, don't redo it" without a separate visited set. The walk is a fixed
// point: it stops the first pass that distributes nothing new, and reports
// ErrNotConverged if no such pass occurs within the configured attempt
// budget.
package graphsolver
