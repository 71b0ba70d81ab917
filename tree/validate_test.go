package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildRawTree(t *testing.T, records []Record) *Tree {
	t.Helper()

	tr := newTree()
	for _, rec := range records {
		tr.nodes[rec.Label] = &Node{Label: rec.Label, Level: -1, OptimalRatio: rec.OptimalRatio, CurrentValue: rec.CurrentValue}
	}
	for _, rec := range records {
		for _, child := range rec.Children {
			tr.childrenOf[rec.Label] = append(tr.childrenOf[rec.Label], child)
			tr.parentsOf[child] = append(tr.parentsOf[child], rec.Label)
		}
	}
	tr.root = findRoot(tr)
	computeLevels(tr)
	return tr
}

func TestNoCyclesPassesOnValidTree(t *testing.T) {
	tr := buildRawTree(t, flatRecords())
	ok, reasons := Validate(tr, NoCycles)
	require.True(t, ok)
	require.Empty(t, reasons)
}

func TestNoCyclesCatchesDiamond(t *testing.T) {
	tr := buildRawTree(t, []Record{
		{Label: "root", Children: []string{"a", "b"}},
		{Label: "a", Children: []string{"shared"}},
		{Label: "b", Children: []string{"shared"}},
		{Label: "shared"},
	})
	ok, reasons := Validate(tr, NoCycles)
	require.False(t, ok)
	require.Len(t, reasons, 1)
	require.Equal(t, "no_cycles", reasons[0].Predicate)
}

func TestConnectedCatchesOrphan(t *testing.T) {
	tr := buildRawTree(t, flatRecords())
	tr.nodes["orphan"] = &Node{Label: "orphan"}

	ok, reasons := Validate(tr, Connected)
	require.False(t, ok)
	require.Len(t, reasons, 1)
	require.Contains(t, reasons[0].Labels, "orphan")
}

func TestSingleParentCatchesSharedChild(t *testing.T) {
	tr := buildRawTree(t, []Record{
		{Label: "root", Children: []string{"a", "b"}},
		{Label: "a", Children: []string{"shared"}},
		{Label: "b", Children: []string{"shared"}},
		{Label: "shared"},
	})
	ok, reasons := Validate(tr, SingleParent)
	require.False(t, ok)
	require.Len(t, reasons, 1)
	require.Equal(t, []string{"shared"}, reasons[0].Labels)
}

func TestLevelSumCatchesImbalance(t *testing.T) {
	tr := buildRawTree(t, []Record{
		{Label: "root", OptimalRatio: 1, Children: []string{"a", "b"}},
		{Label: "a", OptimalRatio: 0.9},
		{Label: "b", OptimalRatio: 0.2},
	})
	ok, reasons := Validate(tr, LevelSum(AttrOptimalRatio, 1.0))
	require.False(t, ok)
	require.Len(t, reasons, 1)
	require.Equal(t, "level_sum", reasons[0].Predicate)
}

func TestLevelSumPassesWithinTolerance(t *testing.T) {
	tr := buildRawTree(t, []Record{
		{Label: "root", OptimalRatio: 1, Children: []string{"a", "b"}},
		{Label: "a", OptimalRatio: 0.5 + 1e-9},
		{Label: "b", OptimalRatio: 0.5 - 1e-9},
	})
	ok, _ := Validate(tr, LevelSum(AttrOptimalRatio, 1.0))
	require.True(t, ok)
}
