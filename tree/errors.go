package tree

import "errors"

// Sentinel errors for tree construction and lookup.
var (
	// ErrEmptyLabel indicates a record with an empty label.
	ErrEmptyLabel = errors.New("tree: label is empty")

	// ErrDuplicateLabel indicates two records share a label.
	ErrDuplicateLabel = errors.New("tree: duplicate label")

	// ErrDanglingEdge indicates a child reference to an unknown label.
	ErrDanglingEdge = errors.New("tree: dangling edge")

	// ErrNoRecords indicates BuildTree was called with an empty record set.
	ErrNoRecords = errors.New("tree: no records supplied")

	// ErrInvalidTree indicates the constructed graph violates one of the
	// rooted-tree invariants. Use Reasons(err) to retrieve the offending
	// predicates and labels/edges.
	ErrInvalidTree = errors.New("tree: invalid tree")
)

// InvalidTreeError wraps ErrInvalidTree with the structured reasons a
// Validate call produced.
type InvalidTreeError struct {
	Reasons []Reason
}

func (e *InvalidTreeError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrInvalidTree.Error()
	}
	return ErrInvalidTree.Error() + ": " + e.Reasons[0].Message
}

func (e *InvalidTreeError) Unwrap() error { return ErrInvalidTree }

// Reasons extracts the structured Reason slice from an error returned by
// BuildTree, if it wraps an InvalidTreeError.
func Reasons(err error) []Reason {
	var ite *InvalidTreeError
	if errors.As(err, &ite) {
		return ite.Reasons
	}
	return nil
}
