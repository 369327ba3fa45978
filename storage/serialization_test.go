package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altitut/FundingMatch-sub001/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Empty(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalOpportunity(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	opp := &core.Opportunity{
		Id:              core.ID(7),
		Title:           "Advanced Manufacturing Research",
		Description:     "Research into additive manufacturing processes.",
		Agency:          "NSF",
		Program:         "SBIR Phase I",
		ProgramID:       "24-501",
		TopicNumber:     "A1.01",
		Phase:           "Phase I",
		AwardType:       "Grant",
		Keywords:        []string{"manufacturing", "materials"},
		URL:             "https://example.org/opp/7",
		SolicitationURL: "https://example.org/sol/24-501",
		Status:          "open",
		PostedDate:      "2025-01-15",
		OpenDate:        "2025-02-01",
		CloseDate:       "2025-04-30",
		AcceptsAnytime:  false,
		Vector:          []float32{0.1, 0.2, 0.3},
		InsertedAt:      now,
		UpdatedAt:       now,
		Metadata:        map[string]string{"source": "nsf.csv"},
	}

	data := MarshalOpportunity(opp)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalOpportunity(data)
	require.NoError(t, err)
	assert.Equal(t, opp, decoded)
}

func TestMarshalUnmarshalProfile(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	profile := &core.ResearcherProfile{
		Id:                core.ID(11),
		Name:              "Dr. Jane Researcher",
		Summary:           "Materials scientist.",
		ResearchInterests: []string{"nanomaterials", "photonics"},
		Education:         []string{"PhD, Materials Science"},
		Awards:            []string{"NSF CAREER"},
		CombinedText:      "Dr. Jane Researcher. Materials scientist.",
		Vector:            []float32{0.5, 0.25},
		InsertedAt:        now,
		UpdatedAt:         now,
	}

	data := MarshalProfile(profile)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalProfile(data)
	require.NoError(t, err)
	assert.Equal(t, profile, decoded)
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	cp := &core.IngestCheckpoint{
		OpportunityId: core.ID(99),
		Title:         "Advanced Manufacturing Research",
		ProcessedAt:   now,
		ExpiresAt:     now.Add(90 * 24 * time.Hour),
	}

	data := MarshalCheckpoint(cp)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, cp, decoded)
}
