package constrained

import "github.com/adamgagorik/allocate/bucket"

// Solver is the constrained closed-form bucket.Solver: no child ever
// receives a negative delta. Its zero value is ready to use.
type Solver struct{}

// Solve runs the fixed/free overflow-elimination iteration described in the
// package doc comment. opts is accepted to satisfy bucket.Solver but is
// unused: the constrained solver has no tunables.
func (Solver) Solve(sys bucket.System, _ bucket.Options) (bucket.Solution, error) {
	n := sys.Len()
	delta := make([]float64, n)
	fixed := make([]bool, n)

	for pass := 0; pass <= n; pass++ {
		sumValuesFree, sumRatioFree := 0.0, 0.0
		freeCount := 0
		for i := 0; i < n; i++ {
			if fixed[i] {
				continue
			}
			sumValuesFree += sys.Values[i]
			sumRatioFree += sys.Ratios[i]
			freeCount++
		}

		if freeCount == 0 {
			if sys.Amount > bucket.ATol {
				return bucket.Solution{}, bucket.ErrInfeasible
			}
			break
		}

		poolFree := sumValuesFree + sys.Amount
		movedToFixed := false
		for i := 0; i < n; i++ {
			if fixed[i] {
				delta[i] = 0
				continue
			}

			if sumRatioFree <= 0 {
				delta[i] = sys.Amount / float64(freeCount)
				continue
			}

			tentative := sys.Ratios[i]/sumRatioFree*poolFree - sys.Values[i]
			if tentative < 0 {
				fixed[i] = true
				delta[i] = 0
				movedToFixed = true
				continue
			}
			delta[i] = tentative
		}

		if !movedToFixed {
			break
		}
	}

	return bucket.NewSolution(sys, delta), nil
}
