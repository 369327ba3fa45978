package storage

import (
	"context"
	"time"

	"github.com/altitut/FundingMatch-sub001/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// OpportunityRepository provides operations for managing funding opportunities.
type OpportunityRepository interface {
	Repository

	// AddOpportunities adds one or more opportunities to storage.
	// For opportunities with ID=0, derives content-based IDs from the
	// identity key. Sets InsertedAt timestamp if not already set.
	// Returns the opportunities with IDs and timestamps populated.
	AddOpportunities(ctx context.Context, opps ...*core.Opportunity) ([]*core.Opportunity, error)

	// UpdateOpportunities updates existing opportunities.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any opportunity doesn't exist.
	UpdateOpportunities(ctx context.Context, opps ...*core.Opportunity) ([]*core.Opportunity, error)

	// DeleteOpportunities removes opportunities by their IDs.
	// Returns ErrNotFound if any opportunity doesn't exist.
	DeleteOpportunities(ctx context.Context, ids ...core.ID) error

	// GetOpportunity retrieves a single opportunity by ID.
	// Returns ErrNotFound if the opportunity doesn't exist.
	GetOpportunity(ctx context.Context, id core.ID) (*core.Opportunity, error)

	// GetOpportunities retrieves multiple opportunities by their IDs.
	// Returns only the opportunities that exist (no error for missing ones).
	GetOpportunities(ctx context.Context, ids ...core.ID) ([]*core.Opportunity, error)

	// GetAllOpportunities retrieves every stored opportunity.
	GetAllOpportunities(ctx context.Context) ([]*core.Opportunity, error)

	// GetOpportunitiesByAgency retrieves every opportunity for one agency.
	GetOpportunitiesByAgency(ctx context.Context, agency string) ([]*core.Opportunity, error)

	// FindSimilar finds opportunities similar to the given vector.
	// Returns records with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)
}

// ProfileRepository provides operations for managing researcher profiles.
type ProfileRepository interface {
	Repository

	// PutProfile stores a profile, inserting or overwriting by ID.
	// Sets InsertedAt on first write and UpdatedAt on every write.
	PutProfile(ctx context.Context, profile *core.ResearcherProfile) (*core.ResearcherProfile, error)

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.ResearcherProfile, error)

	// ListProfiles retrieves every stored profile.
	ListProfiles(ctx context.Context) ([]*core.ResearcherProfile, error)

	// DeleteProfile removes a profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	DeleteProfile(ctx context.Context, id core.ID) error
}

// CheckpointRepository tracks which opportunities have already been
// processed, so re-running ingestion over the same files is cheap.
// Entries expire so opportunities can be revisited after a while.
type CheckpointRepository interface {
	Repository

	// PutCheckpoint records an opportunity as processed.
	PutCheckpoint(ctx context.Context, cp *core.IngestCheckpoint) error

	// HasCheckpoint reports whether an unexpired checkpoint exists for the ID.
	// An expired checkpoint counts as absent but is not removed.
	HasCheckpoint(ctx context.Context, id core.ID, now time.Time) (bool, error)

	// DeleteCheckpoint removes the checkpoint for the ID.
	// Missing checkpoints are not an error.
	DeleteCheckpoint(ctx context.Context, id core.ID) error

	// ListCheckpoints retrieves every stored checkpoint.
	ListCheckpoints(ctx context.Context) ([]*core.IngestCheckpoint, error)

	// PurgeExpired removes all checkpoints whose ExpiresAt is before now.
	// Returns the number of checkpoints removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)

	// LastPurge returns the time of the most recent purge, or the zero
	// time if no purge has run.
	LastPurge(ctx context.Context) (time.Time, error)

	// SetLastPurge records the time of the most recent purge.
	SetLastPurge(ctx context.Context, t time.Time) error
}
