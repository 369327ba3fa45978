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


// Package profile builds researcher profiles from person JSON documents.
//
// A person document carries a researcher's name, summary, and biographical
// information. The builder assembles these, plus any supporting-document
// text, into a core.ResearcherProfile whose CombinedText feeds the
// embedding service.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Link is a reference to an external page about the researcher.
type Link struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Biography holds the biographical_information block of a person document.
// Education and award entries may be plain strings or structured objects;
// structured entries are flattened to compact JSON by the builder.
type Biography struct {
	ResearchInterests []string          `json:"research_interests"`
	Education         []json.RawMessage `json:"education"`
	Awards            []json.RawMessage `json:"awards"`
}

// Person is the root of a person JSON document.
type Person struct {
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	Biography Biography `json:"biographical_information"`
	Links     []Link    `json:"links"`
}

type personDocument struct {
	Person Person `json:"person"`
}

// ParsePerson decodes a person JSON document.
func ParsePerson(r io.Reader) (*Person, error) {
	var doc personDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding person document: %w", err)
	}
	return &doc.Person, nil
}

// LoadPersonFile reads and decodes a person JSON document from disk.
func LoadPersonFile(path string) (*Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePerson(f)
}

// flatten renders a raw JSON entry as display text: quoted strings lose
// their quotes, everything else stays compact JSON.
func flatten(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
