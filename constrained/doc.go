// Package constrained implements the closed-form bucket solver that forbids
// withdrawals: every delta is non-negative.
//
// Starting from the unconstrained target delta d_i = r_i*S - v_i, any child
// whose tentative delta is negative (it is already above its target share)
// is clamped to zero and removed from further consideration ("fixed"). Each
// remaining ("free") child is then sent to its target share of the free
// pool (the free children's current values plus the amount), using target
// ratios renormalized over the free set, so the free deltas sum to the
// amount. Because
// clamping can push a previously-free child negative in a later round, the
// fixed/free partition is recomputed until it stabilizes, which takes at
// most n rounds for n children.
//
// When the free set's ratios all renormalize to zero, the remaining amount
// is split evenly across the free set. When the free set would be empty
// while an amount remains to distribute, the ratios are inconsistent with a
// non-negative allocation and the solver returns bucket.ErrInfeasible.
//
// Complexity: O(n^2) worst case (n rounds, each O(n)).
package constrained
