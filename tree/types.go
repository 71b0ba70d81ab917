package tree

import "sync"

// Node holds one bucket's attributes. Input fields (Label, CurrentValue,
// OptimalRatio) are frozen once BuildTree returns; Level, CurrentRatio,
// ResultsValue, and ResultsRatio are derived. AmountToAdd is an input at the
// root, but graphsolver.Solve rewrites it on every node, leaving zero on the
// root and every other interior node.
type Node struct {
	Label        string
	Level        int
	CurrentValue float64
	OptimalRatio float64
	CurrentRatio float64
	AmountToAdd  float64
	ResultsValue float64
	ResultsRatio float64
}

// Attr returns the named numeric attribute as a float64, or false if name
// does not identify a numeric field on Node.
func (n Node) Attr(name AttrName) (float64, bool) {
	switch name {
	case AttrLevel:
		return float64(n.Level), true
	case AttrCurrentValue:
		return n.CurrentValue, true
	case AttrOptimalRatio:
		return n.OptimalRatio, true
	case AttrCurrentRatio:
		return n.CurrentRatio, true
	case AttrAmountToAdd:
		return n.AmountToAdd, true
	case AttrResultsValue:
		return n.ResultsValue, true
	case AttrResultsRatio:
		return n.ResultsRatio, true
	default:
		return 0, false
	}
}

// setAttr writes the named numeric attribute, returning false if name does
// not identify a writable numeric field.
func (n *Node) setAttr(name AttrName, value float64) bool {
	switch name {
	case AttrLevel:
		n.Level = int(value)
	case AttrCurrentValue:
		n.CurrentValue = value
	case AttrOptimalRatio:
		n.OptimalRatio = value
	case AttrCurrentRatio:
		n.CurrentRatio = value
	case AttrAmountToAdd:
		n.AmountToAdd = value
	case AttrResultsValue:
		n.ResultsValue = value
	case AttrResultsRatio:
		n.ResultsRatio = value
	default:
		return false
	}
	return true
}

// Record is the external, already-parsed input to BuildTree: one row per
// node, with its children referenced by label. Tokenizing a delimited
// string or expanding a regex:: pattern into this shape is the job of an
// external loader, not this package (see the module root doc comment).
type Record struct {
	Label        string
	CurrentValue float64
	OptimalRatio float64
	AmountToAdd  float64
	Children     []string
}

// Tree is a rooted directed tree of Nodes. It owns all node storage;
// external code holds Labels and queries the Tree for attributes.
//
// The mutex guards the maps below so that Clone and read accessors remain
// safe if a Tree is shared across goroutines, even though the documented
// concurrency contract (see the module root doc comment) is single-call
// transactional, not concurrent-mutation-safe.
type Tree struct {
	mu sync.RWMutex

	root string

	nodes map[string]*Node

	// childrenOf[parent] lists that parent's direct children, in the order
	// declared by the input records.
	childrenOf map[string][]string

	// parentsOf[child] lists every record that declared child as one of its
	// children. A valid tree has at most one entry per child; more than one
	// is a single_parent invariant violation caught by Validate.
	parentsOf map[string][]string
}

// newTree allocates an empty Tree ready for population by BuildTree.
func newTree() *Tree {
	return &Tree{
		nodes:      make(map[string]*Node),
		childrenOf: make(map[string][]string),
		parentsOf:  make(map[string][]string),
	}
}
