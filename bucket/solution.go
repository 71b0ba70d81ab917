package bucket

// Solution is the result of solving a System: a delta (addition) for each
// child, and the resulting total (current value plus delta).
type Solution struct {
	System System
	Delta  []float64
	Total  []float64
}

// newSolution builds a Solution from a computed delta slice, deriving Total
// as Values[i] + Delta[i] for each child.
func newSolution(sys System, delta []float64) Solution {
	total := make([]float64, len(delta))
	for i, d := range delta {
		total[i] = sys.Values[i] + d
	}
	return Solution{System: sys, Delta: delta, Total: total}
}

// NewSolution is the exported constructor solvers use to build a Solution
// from a system and its computed per-child deltas.
func NewSolution(sys System, delta []float64) Solution {
	return newSolution(sys, delta)
}

// SumDelta returns the sum of all deltas, which a conserving solver must
// keep equal to System.Amount within tolerance.
func (s Solution) SumDelta() float64 {
	sum := 0.0
	for _, d := range s.Delta {
		sum += d
	}
	return sum
}
