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

import "errors"

// Domain validation errors
var (
	// ErrInvalidOpportunity indicates an Opportunity failed validation.
	ErrInvalidOpportunity = errors.New("invalid opportunity")

	// ErrInvalidProfile indicates a ResearcherProfile failed validation.
	ErrInvalidProfile = errors.New("invalid researcher profile")

	// ErrEmptyTitle indicates the opportunity Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyAgency indicates the opportunity Agency field is empty.
	ErrEmptyAgency = errors.New("agency cannot be empty")

	// ErrEmptyName indicates the profile Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyCombinedText indicates the profile has no text to embed.
	ErrEmptyCombinedText = errors.New("combined text cannot be empty")
)
