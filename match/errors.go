package match

import "errors"

var (
	// ErrOpportunityRepositoryRequired indicates a nil opportunity repository.
	ErrOpportunityRepositoryRequired = errors.New("opportunity repository is required")

	// ErrProfileRepositoryRequired indicates a nil profile repository.
	ErrProfileRepositoryRequired = errors.New("profile repository is required")

	// ErrAIProviderRequired indicates a nil AI provider.
	ErrAIProviderRequired = errors.New("AI provider is required")

	// ErrInvalidTopK indicates a non-positive result limit.
	ErrInvalidTopK = errors.New("topK must be positive")
)
