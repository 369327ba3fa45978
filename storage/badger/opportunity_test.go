package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

func newTestOpportunity(title string) *core.Opportunity {
	return &core.Opportunity{
		Title:       title,
		Description: "A research opportunity.",
		Agency:      "NSF",
		ProgramID:   "24-501",
		Vector:      []float32{0.5, 0.5, 0.5},
	}
}

func TestOpportunityRepository_AddAndGet(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	opp := newTestOpportunity("Quantum Sensing")

	added, err := oppRepo.AddOpportunities(ctx, opp)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotZero(t, added[0].Id, "add must derive a content-based ID")
	assert.False(t, added[0].InsertedAt.IsZero())

	got, err := oppRepo.GetOpportunity(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Quantum Sensing", got.Title)
	assert.Equal(t, "NSF", got.Agency)
}

func TestOpportunityRepository_ContentBasedIDIsStable(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	first := newTestOpportunity("Quantum Sensing")
	_, err = oppRepo.AddOpportunities(ctx, first)
	require.NoError(t, err)

	// Same identity fields, different description: overwrites in place.
	second := newTestOpportunity("Quantum Sensing")
	second.Description = "Updated description."
	_, err = oppRepo.AddOpportunities(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)

	all, err := oppRepo.GetAllOpportunities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "re-adding the same opportunity must not duplicate it")
	assert.Equal(t, "Updated description.", all[0].Description)
}

func TestOpportunityRepository_GetNotFound(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = oppRepo.GetOpportunity(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpportunityRepository_Update(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	opp := newTestOpportunity("Quantum Sensing")
	_, err = oppRepo.AddOpportunities(ctx, opp)
	require.NoError(t, err)

	opp.Status = "closed"
	updated, err := oppRepo.UpdateOpportunities(ctx, opp)
	require.NoError(t, err)
	assert.True(t, updated[0].UpdatedAt.After(updated[0].InsertedAt) ||
		updated[0].UpdatedAt.Equal(updated[0].InsertedAt))

	got, err := oppRepo.GetOpportunity(ctx, opp.Id)
	require.NoError(t, err)
	assert.Equal(t, "closed", got.Status)
}

func TestOpportunityRepository_UpdateMissing(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	missing := newTestOpportunity("Never Added")
	missing.Id = core.ID(99)

	_, err = oppRepo.UpdateOpportunities(context.Background(), missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpportunityRepository_Delete(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	opp := newTestOpportunity("Quantum Sensing")
	_, err = oppRepo.AddOpportunities(ctx, opp)
	require.NoError(t, err)

	err = oppRepo.DeleteOpportunities(ctx, opp.Id)
	require.NoError(t, err)

	_, err = oppRepo.GetOpportunity(ctx, opp.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = oppRepo.DeleteOpportunities(ctx, opp.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpportunityRepository_GetOpportunities_SkipsMissing(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	a := newTestOpportunity("First")
	b := newTestOpportunity("Second")
	_, err = oppRepo.AddOpportunities(ctx, a, b)
	require.NoError(t, err)

	got, err := oppRepo.GetOpportunities(ctx, a.Id, core.ID(424242), b.Id)
	require.NoError(t, err)
	assert.Len(t, got, 2, "missing IDs are skipped, not errors")
}

func TestOpportunityRepository_GetOpportunitiesByAgency(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	nsf := newTestOpportunity("Quantum Sensing")
	doe := newTestOpportunity("Grid Storage")
	doe.Agency = "DOE"
	_, err = oppRepo.AddOpportunities(ctx, nsf, doe)
	require.NoError(t, err)

	got, err := oppRepo.GetOpportunitiesByAgency(ctx, "NSF")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Quantum Sensing", got[0].Title)

	got, err = oppRepo.GetOpportunitiesByAgency(ctx, "NIH")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpportunityRepository_AgencyIndexFollowsUpdatesAndDeletes(t *testing.T) {
	oppRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	opp := newTestOpportunity("Quantum Sensing")
	_, err = oppRepo.AddOpportunities(ctx, opp)
	require.NoError(t, err)

	opp.Agency = "DOE"
	_, err = oppRepo.UpdateOpportunities(ctx, opp)
	require.NoError(t, err)

	got, err := oppRepo.GetOpportunitiesByAgency(ctx, "NSF")
	require.NoError(t, err)
	assert.Empty(t, got, "old agency index entry must be removed on update")

	got, err = oppRepo.GetOpportunitiesByAgency(ctx, "DOE")
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, oppRepo.DeleteOpportunities(ctx, opp.Id))

	got, err = oppRepo.GetOpportunitiesByAgency(ctx, "DOE")
	require.NoError(t, err)
	assert.Empty(t, got, "index entry must be removed on delete")
}
