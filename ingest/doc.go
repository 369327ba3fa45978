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


// Package ingest loads funding opportunity CSV exports into storage.
//
// Agencies publish opportunity listings as CSV files with incompatible
// column layouts. The package recognizes NSF and SBIR exports by filename
// and falls back to a generic column mapping for everything else.
//
// The Pipeline orchestrates a full ingestion run over a directory:
//
//  1. Parse each CSV file into core.Opportunity records.
//  2. Skip opportunities already recorded in the checkpoint ledger and
//     opportunities whose deadline has passed.
//  3. Generate embeddings concurrently through an ants worker pool. The
//     AI provider's own rate limiter paces the remote calls, so pool
//     concurrency never overruns the API quota.
//  4. Store opportunities in batches and checkpoint each one.
//  5. Move fully processed files into an Ingested/ subdirectory so a
//     re-run does not touch them again.
//
// Checkpoints expire with the opportunity's deadline, letting recurring
// opportunities be reprocessed once a new cycle opens. Expired checkpoints
// and expired stored opportunities are purged at most once per day.
package ingest
