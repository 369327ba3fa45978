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


package gemini

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/ratelimit"
)

// Provider implements ai.AIProvider using the Gemini API.
// It manages embedder and generator instances over one shared client and
// one shared rate limiter, so a quota backoff triggered by either service
// delays both.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	generator *Generator
	logger    *slog.Logger
}

// NewProvider creates a new AI provider backed by the Gemini API.
// The config is validated before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to Gemini-specific implementation details.
func NewProvider(ctx context.Context, config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultEmbeddingModel(config.EmbeddingModel),
		googleai.WithDefaultModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	// The quota is per API key, so one limiter paces both services.
	limiter, err := ratelimit.NewLimiter(config.CallsPerMinute)
	if err != nil {
		return nil, err
	}
	executor, err := ratelimit.NewExecutor(limiter)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		embedder:  newEmbedder(client, executor, config.MaxAttempts),
		generator: newGenerator(client, executor, config.MaxAttempts),
		logger:    slog.Default().With("component", "gemini-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the explanation generation service.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing Gemini provider")
	return nil
}
