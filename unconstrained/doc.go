// Package unconstrained implements the closed-form bucket solver that
// permits withdrawals.
//
// Given a System with amount A, current values v_i, and target ratios r_i,
// the solver treats the problem as minimizing sum((v_i + d_i - r_i*S)^2)
// subject to sum(d_i) == A, where S = sum(v_i) + A. The minimum is attained
// by sending every child exactly to its target share:
//
//	d_i = r_i*S - v_i
//
// This may be negative — a withdrawal — and the solver returns it as-is.
//
// Complexity: O(n) time, O(n) space, where n is the number of children.
package unconstrained
