// Package bucket defines the shared data types for the single-parent
// sub-problem solved by this module's bucket solvers: given an amount to
// add, a set of children's current values, and their target ratios,
// decide how much of the amount each child receives.
//
// System is the immutable input bundle; Solution is the result bundle;
// Solver is the interface every bucket-solving strategy implements
// (unconstrained, constrained, Monte-Carlo). Options carries the small set
// of tunables a solver may consult — a tagged struct rather than a
// free-form keyword bag, per the one-entry-point, enum-of-solvers design.
package bucket
