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


// Package gemini provides AI service implementations backed by the Gemini API.
//
// This package implements the ai.AIProvider interface using the langchaingo
// library. Gemini free-tier quotas are tight and shared per API key, so the
// provider routes every remote call of both services through one
// ratelimit.Executor: calls are paced to the configured rate, quota failures
// back off exponentially, and the backoff state is visible to all call sites.
//
// # Usage
//
//	config := ai.DefaultConfig() // reads GEMINI_API_KEY
//
//	provider, err := gemini.NewProvider(ctx, config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "sample text")
//	text, err := provider.Generator().GenerateText(ctx, "explain this match")
package gemini
