package graphsolver

import (
	"errors"
	"math"

	"github.com/adamgagorik/allocate/bucket"
	"github.com/adamgagorik/allocate/montecarlo"
	"github.com/adamgagorik/allocate/tree"
)

// group pairs a parent label with its direct children, in the order a
// breadth-first walk from the tree's root visits them.
type group struct {
	parent   string
	children []string
}

// Solve distributes every node's pending amount_to_add down through its
// descendants using solver at each parent-children bucket system, then
// finalizes results_value and results_ratio across the whole tree.
//
// The walk proceeds bottom-up: on each pass it visits bucket systems in
// reverse breadth-first order (deepest first), so a value solver pushes
// onto a child in one pass is picked up and pushed further down on the
// next. A parent's amount_to_add is negated immediately after it is
// distributed, so "amount_to_add > 0" doubles as the marker for "still
// needs distributing" without a separate visited set. The walk stops the
// first pass that distributes nothing new; if that never happens within
// MaxAttempts passes, Solve returns ErrNotConverged.
func Solve(t *tree.Tree, solver bucket.Solver, opts ...Option) (*tree.Tree, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	target := t
	if !cfg.inPlace {
		target = t.Clone()
	}

	groups := bfsGroups(target)

	converged := false
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		stopAlgorithm := true

		for i := len(groups) - 1; i >= 0; i-- {
			grp := groups[i]
			amount := target.AmountToAdd(grp.parent)
			if amount <= 0 {
				continue
			}

			sol, err := solveGroup(target, grp, amount, solver, cfg.solverOpts)
			if err != nil {
				return nil, err
			}

			target.SetAmountToAdd(grp.parent, -amount)
			for i, child := range grp.children {
				target.AddAmountToAdd(child, sol.Delta[i])
			}
			stopAlgorithm = false
		}

		if stopAlgorithm {
			converged = true
			break
		}
	}
	if !converged {
		return nil, ErrNotConverged
	}

	finalize(target)

	if _, err := tree.Normalize(target, tree.AttrResultsValue, tree.WithOutput(tree.AttrResultsRatio), tree.WithInPlace(true)); err != nil {
		return nil, err
	}

	return target, nil
}

// solveGroup runs solver over grp's bucket system, then falls back to
// montecarlo.Solver if solver either reports ErrInfeasible or returns a
// solution whose deltas don't sum to amount within tolerance. A closed-form
// solver that under-allocates would otherwise silently lose money on the
// way down the tree; Monte-Carlo's greedy stepping always conserves amount.
func solveGroup(t *tree.Tree, grp group, amount float64, solver bucket.Solver, opts bucket.Options) (bucket.Solution, error) {
	values := make([]float64, len(grp.children))
	ratios := make([]float64, len(grp.children))
	for i, child := range grp.children {
		values[i] = t.CurrentValue(child)
		ratios[i] = t.OptimalRatio(child)
	}

	sys, err := bucket.NewSystem(amount, values, ratios, grp.children)
	if err != nil {
		return bucket.Solution{}, err
	}

	sol, err := solver.Solve(sys, opts)
	needsFallback := false
	switch {
	case err != nil && !errors.Is(err, bucket.ErrInfeasible):
		return bucket.Solution{}, err
	case err != nil:
		needsFallback = true
	case !underAllocated(sys, sol):
		return sol, nil
	default:
		needsFallback = true
	}

	if !needsFallback {
		return sol, nil
	}
	if _, alreadyMonteCarlo := solver.(montecarlo.Solver); alreadyMonteCarlo {
		// Monte-Carlo itself can't do better; accept what it returned
		// (or, if it errored, surface that error).
		if err != nil {
			return bucket.Solution{}, err
		}
		return sol, nil
	}

	return montecarlo.Solver{}.Solve(sys, bucket.DefaultOptions())
}

// underAllocated reports whether sol's deltas fail to sum to sys.Amount
// within tolerance, meaning the closed-form solver left money unplaced.
func underAllocated(sys bucket.System, sol bucket.Solution) bool {
	diff := sys.Amount - sol.SumDelta()
	return math.Abs(diff) > bucket.ATol+bucket.RTol*math.Abs(sys.Amount)
}

// finalize converts every node's signed, possibly-still-marked
// amount_to_add into its magnitude, derives results_value from it, and
// zeros amount_to_add back out on any node with children (an interior node
// has already pushed its amount down; only leaves keep a nonzero
// amount_to_add in the final tree).
func finalize(t *tree.Tree) {
	for _, label := range t.Labels() {
		amount := math.Abs(t.AmountToAdd(label))
		t.SetAmountToAdd(label, amount)
		t.SetResultsValue(label, t.CurrentValue(label)+amount)

		if len(t.Children(label)) > 0 {
			t.SetAmountToAdd(label, 0)
		}
	}
}

// bfsGroups lists every (parent, children) pair in t, in breadth-first
// order starting from the root. Leaves are omitted since they have no
// children to form a bucket system with.
func bfsGroups(t *tree.Tree) []group {
	root := t.Root()
	if root == "" {
		return nil
	}

	var groups []group
	visited := map[string]bool{root: true}
	queue := []string{root}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		children := t.Children(parent)
		if len(children) > 0 {
			groups = append(groups, group{parent: parent, children: children})
		}
		for _, child := range children {
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}

	return groups
}
