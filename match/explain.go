package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/altitut/FundingMatch-sub001/core"
)

// fallbackExplanation is used when the generation service fails. Matching
// still works without explanations, so generation failures never fail a run.
const fallbackExplanation = "Unable to generate detailed explanation."

// Explain generates an explanation of why the opportunity matches the
// profile and stores it on the result. A generation failure is logged and
// the fallback text is used instead.
func (m *Matcher) Explain(ctx context.Context, profile *core.ResearcherProfile, result *core.MatchResult) {
	prompt := explanationPrompt(profile, result)

	explanation, err := m.generator.GenerateText(ctx, prompt)
	if err != nil {
		m.logger.Error("failed to generate match explanation",
			"opportunity", core.Truncate(result.Opportunity.Title, 50), "err", err)
		result.Explanation = fallbackExplanation
		return
	}
	result.Explanation = strings.TrimSpace(explanation)
}

// ExplainTop generates explanations for the first n results.
func (m *Matcher) ExplainTop(ctx context.Context, profile *core.ResearcherProfile, results []*core.MatchResult, n int) {
	if n > len(results) {
		n = len(results)
	}
	for _, result := range results[:n] {
		m.Explain(ctx, profile, result)
	}
}

// explanationPrompt builds the generation prompt for one match.
func explanationPrompt(profile *core.ResearcherProfile, result *core.MatchResult) string {
	opp := result.Opportunity

	var b strings.Builder
	b.WriteString("As a funding expert, explain why this funding opportunity is a strong match for the researcher.\n\n")

	b.WriteString("RESEARCHER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	if len(profile.ResearchInterests) > 0 {
		fmt.Fprintf(&b, "- Research Interests: %s\n", strings.Join(profile.ResearchInterests, ", "))
	}
	if profile.Experience != "" {
		fmt.Fprintf(&b, "- Experience: %s\n", core.Truncate(profile.Experience, 500))
	}
	if profile.Publications != "" {
		fmt.Fprintf(&b, "- Publications: %s\n", core.Truncate(profile.Publications, 500))
	}
	if len(profile.Awards) > 0 {
		fmt.Fprintf(&b, "- Awards: %s\n", strings.Join(profile.Awards, "; "))
	}

	b.WriteString("\nFUNDING OPPORTUNITY:\n")
	fmt.Fprintf(&b, "- Title: %s\n", opp.Title)
	fmt.Fprintf(&b, "- Agency: %s\n", opp.Agency)
	if opp.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", core.Truncate(opp.Description, 500))
	}
	if len(opp.Keywords) > 0 {
		fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(opp.Keywords, ", "))
	}
	fmt.Fprintf(&b, "- Match Confidence: %.1f%%\n", result.Confidence)

	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. Why this is a good match (2-3 key reasons)\n")
	b.WriteString("2. How the researcher's background aligns with the opportunity\n")
	b.WriteString("3. Specific suggestions for proposal development\n\n")
	b.WriteString("Keep the response concise and actionable.")

	return b.String()
}
