package match

import "strings"

// Keyword boost parameters. Each interest/keyword overlap is worth a few
// points, capped so keyword spam cannot dominate the vector similarity.
const (
	boostPerMatch = 5.0
	boostCap      = 20.0
)

// KeywordBoost scores the overlap between a researcher's interests and an
// opportunity's keywords. Matching is case-insensitive substring
// containment in either direction, boostPerMatch points per hit, capped
// at boostCap.
func KeywordBoost(interests, keywords []string) float64 {
	if len(interests) == 0 || len(keywords) == 0 {
		return 0
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	matches := 0
	for _, interest := range interests {
		li := strings.ToLower(interest)
		for _, lk := range lowered {
			if strings.Contains(lk, li) || strings.Contains(li, lk) {
				matches++
			}
		}
	}

	boost := float64(matches) * boostPerMatch
	if boost > boostCap {
		boost = boostCap
	}
	return boost
}

// Confidence converts a raw cosine similarity plus a keyword boost into a
// 0-100 confidence score.
func Confidence(similarity float32, boost float64) float64 {
	base := float64(similarity) * 100
	if base < 0 {
		base = 0
	}
	if base > 100 {
		base = 100
	}

	confidence := base + boost
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}
