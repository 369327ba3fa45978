package match

import (
	"fmt"
	"io"
	"time"

	"github.com/altitut/FundingMatch-sub001/core"
)

// WriteReport renders ranked matches as a markdown report.
func WriteReport(w io.Writer, profile *core.ResearcherProfile, results []*core.MatchResult, now time.Time) error {
	if _, err := fmt.Fprintf(w, "# Funding Opportunity Matches\n\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "**Researcher:** %s\n\n", profile.Name)
	fmt.Fprintf(w, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(w, "**Matches:** %d\n\n", len(results))

	summary := confidenceSummary(results)
	fmt.Fprintf(w, "High confidence (>=70%%): %d | Medium (40-69%%): %d | Low (<40%%): %d\n\n",
		summary.high, summary.medium, summary.low)

	for i, result := range results {
		opp := result.Opportunity

		fmt.Fprintf(w, "---\n\n## %d. %s\n\n", i+1, opp.Title)
		fmt.Fprintf(w, "- **Agency:** %s\n", opp.Agency)
		if opp.Program != "" {
			fmt.Fprintf(w, "- **Program:** %s\n", opp.Program)
		}
		fmt.Fprintf(w, "- **Confidence:** %.1f%% (similarity %.3f, keyword boost %.0f)\n",
			result.Confidence, result.Similarity, result.KeywordBoost)
		fmt.Fprintf(w, "- **Deadline:** %s\n", opp.DeadlineStatus(now))
		if opp.URL != "" {
			fmt.Fprintf(w, "- **URL:** %s\n", opp.URL)
		}

		if opp.Description != "" {
			fmt.Fprintf(w, "\n%s\n", core.Truncate(opp.Description, 300))
		}

		if result.Explanation != "" {
			fmt.Fprintf(w, "\n### Why it matches\n\n%s\n", result.Explanation)
		}
		fmt.Fprintln(w)
	}

	return nil
}

type summaryCounts struct {
	high, medium, low int
}

func confidenceSummary(results []*core.MatchResult) summaryCounts {
	var s summaryCounts
	for _, r := range results {
		switch {
		case r.Confidence >= 70:
			s.high++
		case r.Confidence >= 40:
			s.medium++
		default:
			s.low++
		}
	}
	return s
}
