package tree

import (
	"fmt"
	"math"
	"sort"
)

// Reason describes one invariant violation found by Validate. Predicate
// names the check that failed; Labels and Edges pinpoint the offending
// nodes/edges when applicable; Message is a human-readable summary.
type Reason struct {
	Predicate string
	Labels    []string
	Edges     [][2]string
	Message   string
}

// Predicate inspects t and appends any Reasons it finds violated to reasons,
// returning the extended slice. A Predicate that finds nothing wrong
// returns reasons unchanged.
type Predicate func(t *Tree, reasons []Reason) []Reason

// Validate runs every given Predicate against t and reports whether all of
// them passed, along with every Reason collected from the ones that did
// not.
func Validate(t *Tree, preds ...Predicate) (bool, []Reason) {
	reasons := runValidate(t, preds...)
	return len(reasons) == 0, reasons
}

// runValidate is the unexported core Validate and BuildTree both use, kept
// separate so BuildTree can fold its own reasons directly into an
// InvalidTreeError without going through the bool result.
func runValidate(t *Tree, preds ...Predicate) []Reason {
	var reasons []Reason
	for _, pred := range preds {
		reasons = pred(t, reasons)
	}
	return reasons
}

// Three-color marks for NoCycles' orientation-ignoring DFS: White is
// unvisited, Gray is on the current path, Black is done.
const (
	white = 0
	gray  = 1
	black = 2
)

// NoCycles reports a cycle Reason if the tree's edges, treated as
// undirected (orientation ignored, matching how a multi-parent "diamond"
// would also surface here), contain any cycle. A node declaring more than
// one parent closes a cycle under this treatment even without a directed
// back-edge, so NoCycles independently catches the same shape SingleParent
// does.
func NoCycles(t *Tree, reasons []Reason) []Reason {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state := make(map[string]int, len(t.nodes))
	labels := make([]string, 0, len(t.nodes))
	for label := range t.nodes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, start := range labels {
		if state[start] != white {
			continue
		}
		if cyc := cycleVisit(t, start, "", state); cyc != nil {
			reasons = append(reasons, Reason{
				Predicate: "no_cycles",
				Labels:    cyc,
				Message:   fmt.Sprintf("cycle detected: %v", cyc),
			})
		}
	}
	return reasons
}

// cycleVisit walks label's undirected neighborhood (parent and children),
// skipping the trivial backtrack to parent, and returns the closed cycle
// path the first time it re-encounters a Gray node.
func cycleVisit(t *Tree, label, parent string, state map[string]int) []string {
	state[label] = gray
	defer func() { state[label] = black }()

	for _, nbr := range neighbors(t, label) {
		if nbr == parent {
			continue
		}
		switch state[nbr] {
		case white:
			if cyc := cycleVisit(t, nbr, label, state); cyc != nil {
				return cyc
			}
		case gray:
			return []string{label, nbr}
		}
	}
	return nil
}

// neighbors returns label's children and parents combined, the undirected
// adjacency NoCycles and Connected traverse.
func neighbors(t *Tree, label string) []string {
	out := append([]string(nil), t.childrenOf[label]...)
	out = append(out, t.parentsOf[label]...)
	return out
}

// Connected reports a Reason naming every node unreachable from the root
// when walked as an undirected graph.
func Connected(t *Tree, reasons []Reason) []Reason {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == "" || len(t.nodes) == 0 {
		return reasons
	}

	visited := map[string]bool{t.root: true}
	queue := []string{t.root}
	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]
		for _, nbr := range neighbors(t, label) {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	var missing []string
	for label := range t.nodes {
		if !visited[label] {
			missing = append(missing, label)
		}
	}
	if len(missing) == 0 {
		return reasons
	}
	sort.Strings(missing)
	return append(reasons, Reason{
		Predicate: "connected",
		Labels:    missing,
		Message:   fmt.Sprintf("unreachable from root %q: %v", t.root, missing),
	})
}

// SingleParent reports a Reason for every node declared as a child by more
// than one parent record.
func SingleParent(t *Tree, reasons []Reason) []Reason {
	t.mu.RLock()
	defer t.mu.RUnlock()

	labels := make([]string, 0, len(t.parentsOf))
	for label := range t.parentsOf {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		parents := t.parentsOf[label]
		if len(parents) <= 1 {
			continue
		}
		edges := make([][2]string, 0, len(parents))
		for _, p := range parents {
			edges = append(edges, [2]string{p, label})
		}
		reasons = append(reasons, Reason{
			Predicate: "single_parent",
			Labels:    []string{label},
			Edges:     edges,
			Message:   fmt.Sprintf("%q has %d parents, want at most 1", label, len(parents)),
		})
	}
	return reasons
}

// Tolerance constants for level-sum comparisons, matching the numpy.isclose
// shape (atol + rtol*|expected|) graphsolver also uses with bucket.RTol and
// bucket.ATol. Duplicated here rather than imported from bucket so tree has
// no dependency on the bucket/solver packages.
const (
	rtol = 1e-5
	atol = 1e-8
)

// LevelSum returns a Predicate reporting a Reason for every depth level at
// which the sum of key across all nodes at that level does not equal
// expected within rtol/atol tolerance. Used to confirm optimal_ratio and
// current_ratio each sum to 1 level-by-level after normalization. A
// current_ratio level that sums to exactly zero (all current values at that
// level are zero) is accepted.
func LevelSum(key AttrName, expected float64) Predicate {
	return func(t *Tree, reasons []Reason) []Reason {
		t.mu.RLock()
		defer t.mu.RUnlock()

		sums := make(map[int]float64)
		labelsByLevel := make(map[int][]string)
		for label, n := range t.nodes {
			v, ok := n.Attr(key)
			if !ok {
				continue
			}
			sums[n.Level] += v
			labelsByLevel[n.Level] = append(labelsByLevel[n.Level], label)
		}

		levels := make([]int, 0, len(sums))
		for level := range sums {
			levels = append(levels, level)
		}
		sort.Ints(levels)

		for _, level := range levels {
			sum := sums[level]
			if math.Abs(sum-expected) <= atol+rtol*math.Abs(expected) {
				continue
			}
			if key == AttrCurrentRatio && sum == 0 {
				// Every current value at this level is zero: no split to check.
				continue
			}
			lbls := labelsByLevel[level]
			sort.Strings(lbls)
			reasons = append(reasons, Reason{
				Predicate: "level_sum",
				Labels:    lbls,
				Message:   fmt.Sprintf("level %d: %s sums to %v, want %v", level, key, sum, expected),
			})
		}
		return reasons
	}
}

