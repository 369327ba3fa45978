package match

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altitut/FundingMatch-sub001/ai/mock"
	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
	"github.com/altitut/FundingMatch-sub001/storage/badger"
)

func newTestMatcher(t *testing.T, provider *mock.MockProvider) (*Matcher, storage.OpportunityRepository, storage.ProfileRepository) {
	t.Helper()

	oppRepo, profileRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	var p = mock.NewMockProvider()
	if provider != nil {
		p = provider
	}

	matcher, err := NewMatcher(oppRepo, profileRepo, p)
	require.NoError(t, err)

	return matcher, oppRepo, profileRepo
}

func seedOpportunity(t *testing.T, repo storage.OpportunityRepository, title string, vector []float32, keywords []string) *core.Opportunity {
	t.Helper()
	opp := &core.Opportunity{
		Title:    title,
		Agency:   "NSF",
		Keywords: keywords,
		Vector:   vector,
	}
	_, err := repo.AddOpportunities(context.Background(), opp)
	require.NoError(t, err)
	return opp
}

func seedProfile(t *testing.T, repo storage.ProfileRepository, vector []float32, interests []string) *core.ResearcherProfile {
	t.Helper()
	p := &core.ResearcherProfile{
		Name:              "Dr. Jane Researcher",
		ResearchInterests: interests,
		CombinedText:      "Dr. Jane Researcher. Photonics.",
		Vector:            vector,
	}
	stored, err := repo.PutProfile(context.Background(), p)
	require.NoError(t, err)
	return stored
}

func TestNewMatcher_Validation(t *testing.T) {
	oppRepo, profileRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = NewMatcher(nil, profileRepo, mock.NewMockProvider())
	assert.ErrorIs(t, err, ErrOpportunityRepositoryRequired)

	_, err = NewMatcher(oppRepo, nil, mock.NewMockProvider())
	assert.ErrorIs(t, err, ErrProfileRepositoryRequired)

	_, err = NewMatcher(oppRepo, profileRepo, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)
}

func TestMatch_RanksBySimilarity(t *testing.T) {
	matcher, oppRepo, profileRepo := newTestMatcher(t, nil)
	ctx := context.Background()

	seedOpportunity(t, oppRepo, "Strong Match", []float32{1, 0, 0}, nil)
	seedOpportunity(t, oppRepo, "Weak Match", []float32{0.6, 0.8, 0}, nil)
	seedOpportunity(t, oppRepo, "No Match", []float32{0, 0, 1}, nil)

	profile := seedProfile(t, profileRepo, []float32{1, 0, 0}, nil)

	results, err := matcher.Match(ctx, profile.Id, 10, 0.5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Strong Match", results[0].Opportunity.Title)
	assert.InDelta(t, 100, results[0].Confidence, 0.01)
	assert.Equal(t, "Weak Match", results[1].Opportunity.Title)
	assert.InDelta(t, 60, results[1].Confidence, 0.01)
}

func TestMatch_KeywordBoostReordersResults(t *testing.T) {
	matcher, oppRepo, profileRepo := newTestMatcher(t, nil)
	ctx := context.Background()

	// Slightly more similar, but no keyword overlap.
	seedOpportunity(t, oppRepo, "Similar Only", []float32{0.95, 0.312, 0}, nil)
	// Slightly less similar, but keywords align with the researcher.
	seedOpportunity(t, oppRepo, "Keyword Aligned", []float32{0.9, 0.436, 0},
		[]string{"photonics", "nanomaterials"})

	profile := seedProfile(t, profileRepo, []float32{1, 0, 0},
		[]string{"photonics", "nanomaterials"})

	results, err := matcher.Match(ctx, profile.Id, 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Keyword Aligned", results[0].Opportunity.Title)
	assert.Equal(t, 10.0, results[0].KeywordBoost)
	assert.Greater(t, results[0].Confidence, results[1].Confidence)
}

func TestMatch_EmbedsProfileOnDemand(t *testing.T) {
	matcher, oppRepo, profileRepo := newTestMatcher(t, nil)
	ctx := context.Background()

	seedOpportunity(t, oppRepo, "Anything", []float32{1, 0, 0}, nil)
	profile := seedProfile(t, profileRepo, nil, nil)

	_, err := matcher.Match(ctx, profile.Id, 5, 0)
	require.NoError(t, err)

	stored, err := profileRepo.GetProfile(ctx, profile.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Vector, "the generated embedding must be persisted")
}

func TestMatch_InvalidTopK(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)

	_, err := matcher.Match(context.Background(), core.ID(1), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestMatch_MissingProfile(t *testing.T) {
	matcher, _, _ := newTestMatcher(t, nil)

	_, err := matcher.Match(context.Background(), core.ID(404), 5, 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExplain_UsesGenerator(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateTextFunc = func(ctx context.Context, prompt string) (string, error) {
		return "  The researcher's photonics work aligns directly.  ", nil
	}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), generator).(*mock.MockProvider)

	matcher, _, _ := newTestMatcher(t, provider)

	profile := &core.ResearcherProfile{Name: "Dr. Jane Researcher",
		ResearchInterests: []string{"photonics"}}
	result := &core.MatchResult{
		Opportunity: &core.Opportunity{Title: "Photonic Systems", Agency: "NSF"},
		Confidence:  82.5,
	}

	matcher.Explain(context.Background(), profile, result)

	assert.Equal(t, "The researcher's photonics work aligns directly.", result.Explanation)
	require.Equal(t, 1, generator.CallCount())
	prompt := generator.Prompts[0]
	assert.Contains(t, prompt, "Photonic Systems")
	assert.Contains(t, prompt, "Research Interests: photonics")
	assert.Contains(t, prompt, "82.5%")
}

func TestExplain_FallbackOnGenerationFailure(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateTextFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("model overloaded")
	}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), generator).(*mock.MockProvider)

	matcher, _, _ := newTestMatcher(t, provider)

	result := &core.MatchResult{
		Opportunity: &core.Opportunity{Title: "Photonic Systems", Agency: "NSF"},
	}
	matcher.Explain(context.Background(), &core.ResearcherProfile{Name: "Dr. J"}, result)

	assert.Equal(t, fallbackExplanation, result.Explanation)
}

func TestExplainTop_LimitsToN(t *testing.T) {
	generator := mock.NewMockGenerator()
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), generator).(*mock.MockProvider)

	matcher, _, _ := newTestMatcher(t, provider)

	results := []*core.MatchResult{
		{Opportunity: &core.Opportunity{Title: "A", Agency: "NSF"}},
		{Opportunity: &core.Opportunity{Title: "B", Agency: "NSF"}},
		{Opportunity: &core.Opportunity{Title: "C", Agency: "NSF"}},
	}
	matcher.ExplainTop(context.Background(), &core.ResearcherProfile{Name: "Dr. J"}, results, 2)

	assert.Equal(t, 2, generator.CallCount())
	assert.NotEmpty(t, results[0].Explanation)
	assert.NotEmpty(t, results[1].Explanation)
	assert.Empty(t, results[2].Explanation)
}

func TestWriteReport(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	profile := &core.ResearcherProfile{Name: "Dr. Jane Researcher"}
	results := []*core.MatchResult{
		{
			Opportunity: &core.Opportunity{
				Title:       "Photonic Systems",
				Agency:      "NSF",
				Program:     "SBIR Phase I",
				Description: "Integrated photonics research.",
				URL:         "https://nsf.gov/opp/1",
				CloseDate:   "2099-01-01",
			},
			Similarity:   0.82,
			KeywordBoost: 10,
			Confidence:   92,
			Explanation:  "Strong overlap with prior work.",
		},
		{
			Opportunity: &core.Opportunity{Title: "Marginal Fit", Agency: "DOE"},
			Similarity:  0.35,
			Confidence:  35,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, profile, results, now))
	report := buf.String()

	assert.Contains(t, report, "# Funding Opportunity Matches")
	assert.Contains(t, report, "**Researcher:** Dr. Jane Researcher")
	assert.Contains(t, report, "## 1. Photonic Systems")
	assert.Contains(t, report, "92.0% (similarity 0.820, keyword boost 10)")
	assert.Contains(t, report, "### Why it matches")
	assert.Contains(t, report, "Strong overlap with prior work.")
	assert.Contains(t, report, "High confidence (>=70%): 1 | Medium (40-69%): 0 | Low (<40%): 1")
}
