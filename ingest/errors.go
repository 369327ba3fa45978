package ingest

import "errors"

var (
	// ErrOpportunityRepositoryRequired indicates a nil opportunity repository.
	ErrOpportunityRepositoryRequired = errors.New("opportunity repository is required")

	// ErrCheckpointRepositoryRequired indicates a nil checkpoint repository.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository is required")

	// ErrAIProviderRequired indicates a nil AI provider.
	ErrAIProviderRequired = errors.New("AI provider is required")

	// ErrMissingHeader indicates a CSV file without a header row.
	ErrMissingHeader = errors.New("csv file has no header row")
)
