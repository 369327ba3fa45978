package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		filename string
		want     Format
	}{
		{"nsf_funding.csv", FormatNSF},
		{"NSF_2025.csv", FormatNSF},
		{"sbir_open.csv", FormatSBIR},
		{"dod_topics_2025.csv", FormatSBIR},
		{"grants.csv", FormatGeneric},
		{"/data/funding/nsf_export.csv", FormatNSF},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormat(tc.filename))
		})
	}
}

func TestParseNSF(t *testing.T) {
	data := `Title,Synopsis,Program ID,Award Type,Next due date (Y-m-d),Posted date (Y-m-d),URL,Solicitation URL,Status,Proposals accepted anytime
Quantum Sensing,Research into quantum sensors.,24-501,Grant,2025-06-30,2025-01-15,https://nsf.gov/opp/1,https://nsf.gov/sol/1,Open,False
Rolling Program,Always open.,24-502,Grant,,2025-01-10,https://nsf.gov/opp/2,,Open,True
`

	opps, err := ParseNSF(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 2)

	first := opps[0]
	assert.Equal(t, "Quantum Sensing", first.Title)
	assert.Equal(t, "Research into quantum sensors.", first.Description)
	assert.Equal(t, "NSF", first.Agency)
	assert.Equal(t, "24-501", first.ProgramID)
	assert.Equal(t, "Grant", first.AwardType)
	assert.Equal(t, "2025-06-30", first.CloseDate)
	assert.Equal(t, "2025-01-15", first.PostedDate)
	assert.Equal(t, "https://nsf.gov/sol/1", first.SolicitationURL)
	assert.False(t, first.AcceptsAnytime)

	assert.True(t, opps[1].AcceptsAnytime)
}

func TestParseSBIR(t *testing.T) {
	data := `Topic Title,Topic Description,Agency,Branch,Program,Phase,Topic Number,Close Date,Open Date,Solicitation Agency URL,SBIRTopicLink,Solicitation Status,Solicitation Year
Hypersonics Materials,High temperature materials.,DOD,Air Force,SBIR,Phase I,AF25-001,06/30/2025,05/01/2025,https://dod.mil/sol,https://sbir.gov/t/1,Open,2025
`

	opps, err := ParseSBIR(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 1)

	opp := opps[0]
	assert.Equal(t, "Hypersonics Materials", opp.Title)
	assert.Equal(t, "DOD", opp.Agency)
	assert.Equal(t, "SBIR", opp.Program)
	assert.Equal(t, "Phase I", opp.Phase)
	assert.Equal(t, "AF25-001", opp.TopicNumber)
	assert.Equal(t, "06/30/2025", opp.CloseDate)
	assert.Equal(t, "https://dod.mil/sol", opp.URL)
	assert.Equal(t, "https://sbir.gov/t/1", opp.SolicitationURL)
	assert.Equal(t, "Air Force", opp.Metadata["branch"])
	assert.Equal(t, "2025", opp.Metadata["year"])
}

func TestParseSBIR_DefaultProgram(t *testing.T) {
	data := `Topic Title,Topic Description,Agency
Sensing Topic,Some work.,DOE
`

	opps, err := ParseSBIR(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "SBIR", opps[0].Program)
}

func TestParseGeneric(t *testing.T) {
	data := `Name,Synopsis,Organization,Deadline,Funding Amount
Clean Energy Grant,Support for solar research.,DOE,August 20 2025,"$500,000"
`

	opps, err := ParseGeneric(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 1)

	opp := opps[0]
	assert.Equal(t, "Clean Energy Grant", opp.Title)
	assert.Equal(t, "Support for solar research.", opp.Description)
	assert.Equal(t, "DOE", opp.Agency)
	assert.Equal(t, "August 20 2025", opp.CloseDate)
	assert.Equal(t, "$500,000", opp.Metadata["Funding Amount"],
		"unrecognized columns are preserved as metadata")
}

func TestParseGeneric_PrefersCanonicalColumns(t *testing.T) {
	data := `Title,Name,Description,Agency
Canonical Title,Other Name,Details.,NIH
`

	opps, err := ParseGeneric(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "Canonical Title", opps[0].Title)
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ParseNSF(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestReadRows_RaggedRowsTolerated(t *testing.T) {
	data := `Title,Synopsis,Program ID
Short Row,Only synopsis
`

	opps, err := ParseNSF(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "Short Row", opps[0].Title)
	assert.Equal(t, "", opps[0].ProgramID)
}
