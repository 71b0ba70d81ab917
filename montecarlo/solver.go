package montecarlo

import "github.com/adamgagorik/allocate/bucket"

// Solver is the Monte-Carlo constrained bucket.Solver. Its zero value is
// ready to use; tune it via bucket.Options.StepSize / bucket.Options.MaxSteps.
type Solver struct{}

// Solve deposits sys.Amount in discrete increments as described in the
// package doc comment.
func (Solver) Solve(sys bucket.System, opts bucket.Options) (bucket.Solution, error) {
	stepSize := opts.StepSize
	if stepSize <= 0 {
		stepSize = DefaultStepSize
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps(sys.Amount, stepSize)
	}

	totals := append([]float64(nil), sys.Values...)

	deposited := 0.0
	for steps := 0; steps < maxSteps && sys.Amount-deposited >= stepSize-bucket.ATol; steps++ {
		i := bestRecipient(totals, sys.Ratios, stepSize)
		totals[i] += stepSize
		deposited += stepSize
	}

	if residual := sys.Amount - deposited; residual > bucket.ATol {
		i := bestRecipient(totals, sys.Ratios, residual)
		totals[i] += residual
	}

	delta := make([]float64, sys.Len())
	for i := range delta {
		delta[i] = totals[i] - sys.Values[i]
	}

	return bucket.NewSolution(sys, delta), nil
}

// bestRecipient returns the index of the child whose resulting ratio, were
// it to receive step now, would deviate least (in squared error) from its
// target ratio. Ties favor the lowest index.
func bestRecipient(totals, ratios []float64, step float64) int {
	pool := step
	for _, t := range totals {
		pool += t
	}

	best, bestErr := 0, -1.0
	for i, t := range totals {
		ratio := 0.0
		if pool > 0 {
			ratio = (t + step) / pool
		}
		diff := ratio - ratios[i]
		err := diff * diff
		if bestErr < 0 || err < bestErr {
			best, bestErr = i, err
		}
	}
	return best
}
