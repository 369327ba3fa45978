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


package core

import "fmt"

// ValidateOpportunity validates an Opportunity according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Agency must not be empty
//
// NOT validated (populated later in the pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - CloseDate (missing or unparseable deadlines are treated as rolling)
//   - ID (derived from content by the ingestion pipeline)
func ValidateOpportunity(opp *Opportunity) error {
	if opp == nil {
		return fmt.Errorf("%w: opportunity is nil", ErrInvalidOpportunity)
	}

	if opp.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOpportunity, ErrEmptyTitle)
	}

	if opp.Agency == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOpportunity, ErrEmptyAgency)
	}

	return nil
}

// ValidateProfile validates a ResearcherProfile according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - CombinedText must not be empty (there must be something to embed)
func ValidateProfile(profile *ResearcherProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}

	if profile.CombinedText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyCombinedText)
	}

	return nil
}
