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


package storage

import (
	"github.com/altitut/FundingMatch-sub001/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalOpportunity serializes an Opportunity to bytes.
func MarshalOpportunity(opp *core.Opportunity) []byte {
	buf := make([]byte, core.OpportunityMUS.Size(*opp))
	core.OpportunityMUS.Marshal(*opp, buf)
	return buf
}

// UnmarshalOpportunity deserializes an Opportunity from bytes.
func UnmarshalOpportunity(data []byte) (*core.Opportunity, error) {
	opp, _, err := core.OpportunityMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

// MarshalProfile serializes a ResearcherProfile to bytes.
func MarshalProfile(profile *core.ResearcherProfile) []byte {
	buf := make([]byte, core.ResearcherProfileMUS.Size(*profile))
	core.ResearcherProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a ResearcherProfile from bytes.
func UnmarshalProfile(data []byte) (*core.ResearcherProfile, error) {
	profile, _, err := core.ResearcherProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MarshalCheckpoint serializes an IngestCheckpoint to bytes.
func MarshalCheckpoint(cp *core.IngestCheckpoint) []byte {
	buf := make([]byte, core.IngestCheckpointMUS.Size(*cp))
	core.IngestCheckpointMUS.Marshal(*cp, buf)
	return buf
}

// UnmarshalCheckpoint deserializes an IngestCheckpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.IngestCheckpoint, error) {
	cp, _, err := core.IngestCheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}
