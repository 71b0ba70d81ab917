package tree

import "sort"

// BuildTree turns a flat sequence of Records into a validated rooted Tree.
//
// Construction proceeds in three passes:
//  1. Node pass: create every node from its Record. ErrDuplicateLabel if any
//     label repeats.
//  2. Edge pass: wire a parent->child edge for every child reference.
//     ErrDanglingEdge if a child names an unknown label.
//  3. Depth & validation pass: compute Level by BFS from the tree's root,
//     then run Validate. An invariant violation returns an
//     *InvalidTreeError wrapping ErrInvalidTree.
//
// After validation, OptimalRatio is normalized in place so siblings sum to
// 1, and CurrentRatio is derived from CurrentValue the same way; both
// level-sum invariants are re-checked afterward.
func BuildTree(records []Record) (*Tree, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	t := newTree()

	// Pass 1: nodes.
	for _, rec := range records {
		if rec.Label == "" {
			return nil, ErrEmptyLabel
		}
		if _, exists := t.nodes[rec.Label]; exists {
			return nil, ErrDuplicateLabel
		}
		t.nodes[rec.Label] = &Node{
			Label:        rec.Label,
			Level:        -1,
			CurrentValue: rec.CurrentValue,
			OptimalRatio: rec.OptimalRatio,
			AmountToAdd:  rec.AmountToAdd,
		}
	}

	// Pass 2: edges.
	for _, rec := range records {
		for _, child := range rec.Children {
			if _, exists := t.nodes[child]; !exists {
				return nil, ErrDanglingEdge
			}
			t.childrenOf[rec.Label] = append(t.childrenOf[rec.Label], child)
			t.parentsOf[child] = append(t.parentsOf[child], rec.Label)
		}
	}

	// Pass 3: depth & validation.
	t.root = findRoot(t)
	computeLevels(t)

	if reasons := runValidate(t, NoCycles, Connected, SingleParent); len(reasons) > 0 {
		return nil, &InvalidTreeError{Reasons: reasons}
	}

	if _, err := Normalize(t, AttrOptimalRatio, WithOutput(AttrOptimalRatio), WithInPlace(true)); err != nil {
		return nil, err
	}
	if _, err := Normalize(t, AttrCurrentValue, WithOutput(AttrCurrentRatio), WithInPlace(true)); err != nil {
		return nil, err
	}

	reasons := runValidate(t,
		LevelSum(AttrOptimalRatio, 1.0),
		LevelSum(AttrCurrentRatio, 1.0),
	)
	if len(reasons) > 0 {
		return nil, &InvalidTreeError{Reasons: reasons}
	}

	return t, nil
}

// findRoot picks the node with no declared parent as the tree's root. If
// zero or more than one such node exists (an invalid tree), it deterministically
// picks the lexicographically smallest candidate label — or, failing that,
// the smallest label overall — so that level computation and validation
// still run and report every offending reason.
func findRoot(t *Tree) string {
	var candidates []string
	for label := range t.nodes {
		if len(t.parentsOf[label]) == 0 {
			candidates = append(candidates, label)
		}
	}
	if len(candidates) > 0 {
		sort.Strings(candidates)
		return candidates[0]
	}

	all := make([]string, 0, len(t.nodes))
	for label := range t.nodes {
		all = append(all, label)
	}
	sort.Strings(all)
	return all[0]
}

// computeLevels runs a breadth-first traversal from t.root over the
// childrenOf adjacency, writing each reached node's Level. Nodes unreachable
// from root (only possible in an invalid, disconnected tree) keep Level -1.
func computeLevels(t *Tree) {
	if t.root == "" {
		return
	}

	t.nodes[t.root].Level = 0
	queue := []string{t.root}
	visited := map[string]bool{t.root: true}

	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]

		for _, child := range t.childrenOf[label] {
			if visited[child] {
				continue
			}
			visited[child] = true
			t.nodes[child].Level = t.nodes[label].Level + 1
			queue = append(queue, child)
		}
	}
}
