package graphsolver

import "errors"

// ErrNotConverged is returned when Solve exhausts its attempt budget
// without a pass that distributes no new amount_to_add. A well-formed tree
// converges in at most its depth plus one attempts; reaching this means
// either a pathologically deep tree or a MaxAttempts set too low for it.
var ErrNotConverged = errors.New("graphsolver: max attempts reached without converging")
