package constrained_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamgagorik/allocate/bucket"
	"github.com/adamgagorik/allocate/constrained"
)

func TestSolveNoClampingNeeded(t *testing.T) {
	sys, err := bucket.NewSystem(1000,
		[]float64{2000, 1000, 1000},
		[]float64{0.5, 0.25, 0.25},
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)

	require.InDelta(t, 500.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 250.0, sol.Delta[1], 1e-8)
	require.InDelta(t, 250.0, sol.Delta[2], 1e-8)
}

func TestSolveWithdrawalCaseYieldsZero(t *testing.T) {
	sys, err := bucket.NewSystem(0,
		[]float64{3000, 0, 0},
		[]float64{0.5, 0.35, 0.15},
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)

	for i, d := range sol.Delta {
		require.InDeltaf(t, 0.0, d, 1e-8, "delta[%d]", i)
	}
}

func TestSolveNeverWithdraws(t *testing.T) {
	sys, err := bucket.NewSystem(50,
		[]float64{0, 1000},
		[]float64{1, 0},
		[]string{"a", "b"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)

	for _, d := range sol.Delta {
		require.GreaterOrEqual(t, d, 0.0)
	}
	require.InDelta(t, 50.0, sol.SumDelta(), 1e-6)
}

func TestSolveZeroRatioZeroValueChild(t *testing.T) {
	sys, err := bucket.NewSystem(100, []float64{0, 500}, []float64{0, 1}, []string{"a", "b"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 0.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 100.0, sol.Delta[1], 1e-8)
}

func TestSolveAllZeroValuesDistributeByRatio(t *testing.T) {
	sys, err := bucket.NewSystem(90, []float64{0, 0, 0}, []float64{0.2, 0.3, 0.5}, []string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 18.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 27.0, sol.Delta[1], 1e-8)
	require.InDelta(t, 45.0, sol.Delta[2], 1e-8)
}

func TestSolveConserves(t *testing.T) {
	sys, err := bucket.NewSystem(4000,
		[]float64{4000, 2000, 2000},
		[]float64{0.5, 0.25, 0.25},
		[]string{"3", "4", "5"})
	require.NoError(t, err)

	sol, err := constrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 4000.0, sol.SumDelta(), 1e-6)
}
