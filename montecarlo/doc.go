// Package montecarlo implements a constrained bucket solver that deposits
// the amount to add in small discrete steps rather than solving the
// allocation in closed form.
//
// At each step it tentatively gives the step to every child in turn and
// measures the squared error between the child's resulting ratio (its
// running total, including this step, divided by the running pool of all
// totals plus this step) and its target ratio. The child with the smallest
// resulting error receives the step; ties go to the lowest index. After
// stepping as many whole increments as fit in the amount (or as MaxSteps
// allows, if fewer), any leftover residual is deposited the same way in one
// final step.
//
// Despite the package name, this is not stochastic: selection is a
// deterministic greedy pick, never a random sample. The name reflects the
// algorithm's iterative-deposit flavor, not its source of randomness (it
// has none). No withdrawals are ever issued — every step only adds.
//
// Complexity: O(max_steps * n).
package montecarlo
