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


// Package ratelimit paces outbound calls to a quota-limited remote service.
//
// It provides two cooperating pieces:
//
//   - Limiter: enforces a minimum wall-clock interval between the starts of
//     successive calls, and can suspend all calls until a future instant when
//     the remote service signals quota exhaustion.
//   - Executor: wraps a remote call, consults the Limiter before each attempt,
//     classifies failures, drives the Limiter's backoff state, and bounds the
//     number of attempts.
//
// One Limiter instance is shared by every call site that talks to the same
// remote quota. Callers needing isolation (tests, a second quota domain)
// construct a fresh instance; there is no package-level singleton.
//
// The failure classifier is the only place that inspects error text. Quota
// exhaustion is the sole signal the remote service provides in-band, so the
// classifier matches the "429" / "RESOURCE_EXHAUSTED" markers and extracts an
// optional 'retryDelay' hint; everything else in the package works with the
// classified outcome, never with raw strings.
package ratelimit
