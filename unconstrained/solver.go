package unconstrained

import "github.com/adamgagorik/allocate/bucket"

// Solver is the unconstrained closed-form bucket.Solver. Its zero value is
// ready to use.
type Solver struct{}

// Solve computes d_i = r_i*S - v_i for every child, where S is the system
// total (current values plus the amount to add). opts is accepted to
// satisfy bucket.Solver but is unused: the unconstrained solver has no
// tunables.
func (Solver) Solve(sys bucket.System, _ bucket.Options) (bucket.Solution, error) {
	s := sys.Total()
	delta := make([]float64, sys.Len())
	for i := range delta {
		delta[i] = sys.Ratios[i]*s - sys.Values[i]
	}
	return bucket.NewSolution(sys, delta), nil
}
