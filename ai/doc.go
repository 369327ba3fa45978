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


// Package ai provides abstractions for the AI services used in FundingMatch.
//
// It defines interfaces for text embeddings and match-explanation generation
// so the ingestion pipeline and matcher depend on abstractions rather than a
// concrete remote API.
//
// The package is designed around three interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Generator: generates free-text explanations for matches
//   - AIProvider: aggregates both for convenient initialization
//
// Two implementation sub-packages exist:
//
//   - ai/gemini: production implementation backed by the Gemini API, with all
//     remote calls paced and retried through a shared ratelimit.Executor
//   - ai/mock: deterministic test doubles requiring no external service
//
// Public constructors (gemini.NewProvider, gemini.NewEmbedder) return
// interface types to enforce abstraction. Mock constructors return concrete
// types so tests can inject behavior and assert call counts.
package ai
