package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhukesh048/budget-validator/internal/grid"
)

func newGrid(rows [][]string) *grid.Grid {
	return &grid.Grid{Rows: rows, Source: "test"}
}

func TestBuildIndex_SkipsBlankNames(t *testing.T) {
	g := newGrid([][]string{
		{"Salaries", "1000", "950"},
		{"", "500", "500"},
		{"   ", "250", "250"},
		{"Rent", "500", "500"},
	})

	idx := BuildIndex(g, 0, 1, 2, -1)

	assert.Equal(t, 2, idx.Len())
	_, ok := idx.Lookup("")
	assert.False(t, ok)
}

func TestBuildIndex_NormalizesKeys(t *testing.T) {
	g := newGrid([][]string{
		{"  Salaries  ", "1000", "950"},
	})

	idx := BuildIndex(g, 0, 1, 2, -1)

	rec, ok := idx.Lookup("salaries")
	require.True(t, ok)
	assert.Equal(t, "Salaries", rec.DisplayName)
	assert.Equal(t, "salaries", rec.NormalizedKey)
	assert.Equal(t, 0, rec.SourceRow)
}

func TestBuildIndex_LastWriteWins(t *testing.T) {
	g := newGrid([][]string{
		{"Rent", "100", "100"},
		{"rent", "200", "200"},
	})

	idx := BuildIndex(g, 0, 1, 2, -1)

	require.Equal(t, 1, idx.Len())
	rec, ok := idx.Lookup("rent")
	require.True(t, ok)
	assert.Equal(t, 1, rec.SourceRow)
	assert.Equal(t, 200.0, rec.Budget.Value)
}

func TestBuildIndex_ExcludesRow(t *testing.T) {
	g := newGrid([][]string{
		{"Name", "Budget", "Actual"},
		{"Rent", "500", "500"},
	})

	idx := BuildIndex(g, 0, 1, 2, 0)

	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Lookup("name")
	assert.False(t, ok)
}

func TestIndex_KeysSorted(t *testing.T) {
	g := newGrid([][]string{
		{"zebra", "1", "1"},
		{"alpha", "1", "1"},
		{"mango", "1", "1"},
	})

	idx := BuildIndex(g, 0, 1, 2, -1)

	assert.Equal(t, []string{"alpha", "mango", "zebra"}, idx.Keys())
}
