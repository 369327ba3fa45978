package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOpportunity(t *testing.T) {
	valid := &Opportunity{Title: "Photonic Computing", Agency: "NSF"}
	require.NoError(t, ValidateOpportunity(valid))

	assert.ErrorIs(t, ValidateOpportunity(nil), ErrInvalidOpportunity)

	noTitle := &Opportunity{Agency: "NSF"}
	err := ValidateOpportunity(noTitle)
	assert.ErrorIs(t, err, ErrInvalidOpportunity)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	noAgency := &Opportunity{Title: "Photonic Computing"}
	err = ValidateOpportunity(noAgency)
	assert.ErrorIs(t, err, ErrInvalidOpportunity)
	assert.ErrorIs(t, err, ErrEmptyAgency)
}

func TestValidateProfile(t *testing.T) {
	valid := &ResearcherProfile{Name: "A. Researcher", CombinedText: "Name: A. Researcher"}
	require.NoError(t, ValidateProfile(valid))

	assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)

	noName := &ResearcherProfile{CombinedText: "text"}
	err := ValidateProfile(noName)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorIs(t, err, ErrEmptyName)

	noText := &ResearcherProfile{Name: "A. Researcher"}
	err = ValidateProfile(noText)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorIs(t, err, ErrEmptyCombinedText)
}
