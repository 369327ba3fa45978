package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_FindSimilar_RanksByScore(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	exact := newTestOpportunity("Exact Match")
	exact.Vector = []float32{1, 0, 0}
	near := newTestOpportunity("Close Match")
	near.Vector = []float32{0.9, 0.1, 0}
	far := newTestOpportunity("Far Match")
	far.Vector = []float32{0, 0, 1}

	_, err = oppRepo.AddOpportunities(ctx, far, near, exact)
	require.NoError(t, err)

	results, err := backend.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 2, "the orthogonal vector must be filtered out")

	assert.Equal(t, "Exact Match", results[0].Opportunity.Title)
	assert.Equal(t, "Close Match", results[1].Opportunity.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestBackend_FindSimilar_Limit(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	for _, title := range []string{"A", "B", "C", "D"} {
		opp := newTestOpportunity(title)
		opp.Vector = []float32{1, 0, 0}
		_, err = oppRepo.AddOpportunities(ctx, opp)
		require.NoError(t, err)
	}

	results, err := backend.FindSimilar(ctx, []float32{1, 0, 0}, 0, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestBackend_FindSimilar_SkipsUnembedded(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	opp := newTestOpportunity("No Vector")
	opp.Vector = nil
	_, err = oppRepo.AddOpportunities(ctx, opp)
	require.NoError(t, err)

	results, err := backend.FindSimilar(ctx, []float32{1, 0, 0}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 1.0, dotProduct([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 0.0, dotProduct([]float32{1, 0}, []float32{0, 1}), 1e-6)
	// Mismatched lengths use the shorter vector.
	assert.InDelta(t, 0.5, dotProduct([]float32{0.5}, []float32{1, 1, 1}), 1e-6)
}

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())
}

func TestOpenBackend_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/db"
	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}
