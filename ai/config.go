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


package ai

import (
	"errors"
	"os"
)

// Config holds configuration for AI service providers.
type Config struct {
	// APIKey authenticates against the remote Gemini API.
	// Defaults to the GEMINI_API_KEY environment variable.
	APIKey string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "gemini-embedding-001"
	EmbeddingModel string

	// GenerationModel is the model identifier to use for match explanations.
	// Example: "gemini-2.5-pro"
	GenerationModel string

	// CallsPerMinute is the pacing bound for remote API calls. Both the
	// embedding and generation services share this budget because the
	// provider quota is per API key, not per model.
	// Default: 10
	CallsPerMinute int

	// MaxAttempts is the retry budget per remote call when the API reports
	// quota exhaustion. Non-quota failures are never retried.
	// Default: 3
	MaxAttempts int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the Gemini API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithGenerationModel sets the generation model identifier.
func WithGenerationModel(model string) ConfigOption {
	return func(c *Config) {
		c.GenerationModel = model
	}
}

// WithCallsPerMinute sets the shared pacing bound for remote API calls.
func WithCallsPerMinute(n int) ConfigOption {
	return func(c *Config) {
		c.CallsPerMinute = n
	}
}

// WithMaxAttempts sets the per-call retry budget for quota failures.
func WithMaxAttempts(n int) ConfigOption {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// DefaultConfig returns a Config with sensible defaults for the Gemini API.
// The API key is read from the GEMINI_API_KEY environment variable.
func DefaultConfig() *Config {
	return &Config{
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:  "gemini-embedding-001",
		GenerationModel: "gemini-2.5-pro",
		CallsPerMinute:  10,
		MaxAttempts:     3,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithAPIKey("..."),
//       WithCallsPerMinute(30),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required (set GEMINI_API_KEY)")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.GenerationModel == "" {
		return errors.New("ai config: GenerationModel is required")
	}
	if c.CallsPerMinute < 1 {
		return errors.New("ai config: CallsPerMinute must be positive")
	}
	if c.MaxAttempts < 1 {
		return errors.New("ai config: MaxAttempts must be positive")
	}
	return nil
}
