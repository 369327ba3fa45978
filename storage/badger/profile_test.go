package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

func newTestProfile(name string) *core.ResearcherProfile {
	return &core.ResearcherProfile{
		Name:         name,
		Summary:      "Materials scientist.",
		CombinedText: name + ". Materials scientist.",
		Vector:       []float32{0.1, 0.2},
	}
}

func TestProfileRepository_PutAndGet(t *testing.T) {
	_, profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	stored, err := profileRepo.PutProfile(ctx, newTestProfile("Dr. Jane Researcher"))
	require.NoError(t, err)
	assert.NotZero(t, stored.Id, "put must derive an ID from the name")
	assert.False(t, stored.InsertedAt.IsZero())

	got, err := profileRepo.GetProfile(ctx, stored.Id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Researcher", got.Name)
}

func TestProfileRepository_PutOverwritesByName(t *testing.T) {
	_, profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	first, err := profileRepo.PutProfile(ctx, newTestProfile("Dr. Jane Researcher"))
	require.NoError(t, err)

	updated := newTestProfile("Dr. Jane Researcher")
	updated.Summary = "Photonics researcher."
	second, err := profileRepo.PutProfile(ctx, updated)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.True(t, first.InsertedAt.Equal(second.InsertedAt),
		"overwrite must preserve the original insertion time")

	profiles, err := profileRepo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Photonics researcher.", profiles[0].Summary)
}

func TestProfileRepository_GetNotFound(t *testing.T) {
	_, profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = profileRepo.GetProfile(context.Background(), core.ID(5))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProfileRepository_Delete(t *testing.T) {
	_, profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	stored, err := profileRepo.PutProfile(ctx, newTestProfile("Dr. Jane Researcher"))
	require.NoError(t, err)

	require.NoError(t, profileRepo.DeleteProfile(ctx, stored.Id))

	_, err = profileRepo.GetProfile(ctx, stored.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = profileRepo.DeleteProfile(ctx, stored.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
