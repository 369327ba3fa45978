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


package fundingmatch

import (
	"context"
	"log/slog"

	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/ai/gemini"
	"github.com/altitut/FundingMatch-sub001/ingest"
	"github.com/altitut/FundingMatch-sub001/match"
	"github.com/altitut/FundingMatch-sub001/storage"
	"github.com/altitut/FundingMatch-sub001/storage/badger"
)

// Database bundles the opportunity store, the researcher profile store,
// the ingestion checkpoint ledger, and the AI provider behind one handle.
type Database struct {
	backend        *badger.Backend
	oppRepo        storage.OpportunityRepository
	profileRepo    storage.ProfileRepository
	checkpointRepo storage.CheckpointRepository
	provider       ai.AIProvider
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the configuration used to construct the Gemini provider.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithAIProvider injects an already-constructed provider. When set, no
// Gemini client is created; useful for tests with the mock provider.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the backend in memory instead of on disk.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(ctx context.Context, filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = gemini.NewProvider(ctx, options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:        backend,
		oppRepo:        badger.NewOpportunityRepository(backend),
		profileRepo:    badger.NewProfileRepository(backend),
		checkpointRepo: badger.NewCheckpointRepository(backend),
		provider:       provider,
		logger:         slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) OpportunityRepository() storage.OpportunityRepository {
	return db.oppRepo
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profileRepo
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

func (db *Database) AIProvider() ai.AIProvider {
	return db.provider
}

func (db *Database) NewIngestionPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.oppRepo, db.checkpointRepo, db.provider, opts...)
}

func (db *Database) NewMatcher(opts ...match.MatcherOption) (*match.Matcher, error) {
	return match.NewMatcher(db.oppRepo, db.profileRepo, db.provider, opts...)
}
