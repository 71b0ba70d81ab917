package unconstrained_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamgagorik/allocate/bucket"
	"github.com/adamgagorik/allocate/unconstrained"
)

func TestSolveFlatThreeChildDeposit(t *testing.T) {
	sys, err := bucket.NewSystem(1000,
		[]float64{2000, 1000, 1000},
		[]float64{0.5, 0.25, 0.25},
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := unconstrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)

	require.InDelta(t, 500.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 250.0, sol.Delta[1], 1e-8)
	require.InDelta(t, 250.0, sol.Delta[2], 1e-8)
	require.InDelta(t, 2500.0, sol.Total[0], 1e-8)
	require.InDelta(t, 1250.0, sol.Total[1], 1e-8)
	require.InDelta(t, 1250.0, sol.Total[2], 1e-8)
}

func TestSolveWithdrawalCase(t *testing.T) {
	sys, err := bucket.NewSystem(0,
		[]float64{3000, 0, 0},
		[]float64{0.5, 0.35, 0.15},
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := unconstrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)

	require.InDelta(t, -1500.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 1050.0, sol.Delta[1], 1e-8)
	require.InDelta(t, 450.0, sol.Delta[2], 1e-8)
}

func TestSolveZeroCurrentValuesDistributeByRatio(t *testing.T) {
	sys, err := bucket.NewSystem(10, []float64{0, 0}, []float64{0.5, 0.5}, []string{"a", "b"})
	require.NoError(t, err)

	sol, err := unconstrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 5.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 5.0, sol.Delta[1], 1e-8)
}

func TestSolveZeroRatioZeroValueChild(t *testing.T) {
	sys, err := bucket.NewSystem(100, []float64{0, 500}, []float64{0, 1}, []string{"a", "b"})
	require.NoError(t, err)

	sol, err := unconstrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 0.0, sol.Delta[0], 1e-8)
	require.InDelta(t, 100.0, sol.Delta[1], 1e-8)
}

func TestSolveConservesAmount(t *testing.T) {
	sys, err := bucket.NewSystem(777,
		[]float64{100, 250, 900},
		[]float64{0.2, 0.3, 0.5},
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	sol, err := unconstrained.Solver{}.Solve(sys, bucket.Options{})
	require.NoError(t, err)
	require.InDelta(t, 777.0, sol.SumDelta(), 1e-6)
}
