// Copyright 2025 The FundingMatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package match ranks stored funding opportunities against researcher
// profiles.
//
// Ranking is vector similarity first: the profile's embedding is searched
// against the opportunity store, and each hit's cosine similarity is
// converted to a 0-100 confidence score with a bounded boost for overlap
// between the researcher's interests and the opportunity's keywords.
// Explanations for top matches are generated separately through the AI
// provider's generation service.
package match

import (
	"context"
	"log/slog"
	"slices"

	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

// Matcher ranks funding opportunities for researcher profiles.
type Matcher struct {
	oppRepo     storage.OpportunityRepository
	profileRepo storage.ProfileRepository
	embedder    ai.Embedder
	generator   ai.Generator
	logger      *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMatcherLogger sets a custom logger.
func WithMatcherLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMatcher creates a new Matcher.
func NewMatcher(
	oppRepo storage.OpportunityRepository,
	profileRepo storage.ProfileRepository,
	provider ai.AIProvider,
	opts ...MatcherOption,
) (*Matcher, error) {
	if oppRepo == nil {
		return nil, ErrOpportunityRepositoryRequired
	}
	if profileRepo == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	m := &Matcher{
		oppRepo:     oppRepo,
		profileRepo: profileRepo,
		embedder:    provider.Embedder(),
		generator:   provider.Generator(),
		logger:      slog.Default().With("component", "matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Match ranks stored opportunities for the given profile.
// Returns up to topK results with similarity >= minSimilarity, ordered by
// confidence descending. If the profile has no stored embedding, one is
// generated from its combined text and persisted.
func (m *Matcher) Match(ctx context.Context, profileID core.ID, topK int, minSimilarity float32) ([]*core.MatchResult, error) {
	if topK <= 0 {
		return nil, ErrInvalidTopK
	}

	profile, err := m.profileRepo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(profile.Vector) == 0 {
		m.logger.Info("profile has no embedding, generating one", "name", profile.Name)
		vector, err := m.embedder.EmbedText(ctx, profile.CombinedText)
		if err != nil {
			return nil, err
		}
		profile.Vector = vector
		if _, err := m.profileRepo.PutProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	hits, err := m.oppRepo.FindSimilar(ctx, profile.Vector, minSimilarity, topK)
	if err != nil {
		return nil, err
	}

	results := make([]*core.MatchResult, 0, len(hits))
	for _, hit := range hits {
		boost := KeywordBoost(profile.ResearchInterests, hit.Opportunity.Keywords)
		results = append(results, &core.MatchResult{
			Opportunity:  hit.Opportunity,
			Similarity:   hit.Score,
			KeywordBoost: boost,
			Confidence:   Confidence(hit.Score, boost),
		})
	}

	// The boost can reorder hits relative to raw similarity.
	slices.SortFunc(results, func(a, b *core.MatchResult) int {
		if a.Confidence > b.Confidence {
			return -1
		}
		if a.Confidence < b.Confidence {
			return 1
		}
		return 0
	})

	m.logger.Debug("matched opportunities",
		"profile", profile.Name, "hits", len(results))

	return results, nil
}
