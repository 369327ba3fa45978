package profile

import (
	"encoding/json"
	"strings"

	"github.com/altitut/FundingMatch-sub001/core"
)

// Per-section character limits for the combined embedding text. One
// oversized CV section must not drown out the rest of the profile.
const (
	experienceLimit   = 1000
	publicationsLimit = 1000
	skillsLimit       = 500
	supportingLimit   = 3000
)

// Extras carries free-text profile sections extracted from supporting
// documents (CV, biosketch, publication list).
type Extras struct {
	Experience     string
	Publications   string
	Skills         string
	SupportingText string
}

// Build assembles a researcher profile from a person document and any
// supporting-document sections. The profile ID is derived from the name,
// so rebuilding the same person's profile overwrites it in storage.
func Build(person *Person, extras Extras) (*core.ResearcherProfile, error) {
	p := &core.ResearcherProfile{
		Id:                core.IDFromContent(person.Name),
		Name:              person.Name,
		Summary:           person.Summary,
		ResearchInterests: person.Biography.ResearchInterests,
		Education:         flattenAll(person.Biography.Education),
		Awards:            flattenAll(person.Biography.Awards),
		Experience:        core.Truncate(extras.Experience, experienceLimit),
		Publications:      core.Truncate(extras.Publications, publicationsLimit),
		Skills:            core.Truncate(extras.Skills, skillsLimit),
	}
	p.CombinedText = combinedText(p, core.Truncate(extras.SupportingText, supportingLimit))

	if err := core.ValidateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

func flattenAll(raws []json.RawMessage) []string {
	if len(raws) == 0 {
		return nil
	}
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		out = append(out, flatten(raw))
	}
	return out
}

// combinedText builds the full text representation used for embedding.
// Empty sections are dropped.
func combinedText(p *core.ResearcherProfile, supporting string) string {
	sections := []string{
		labeled("Name", p.Name),
		labeled("Summary", p.Summary),
		labeled("Research Interests", strings.Join(p.ResearchInterests, ", ")),
		labeled("Education", strings.Join(p.Education, "; ")),
		labeled("Awards", strings.Join(p.Awards, "; ")),
		labeled("Experience", p.Experience),
		labeled("Publications", p.Publications),
		labeled("Skills", p.Skills),
		supporting,
	}

	nonEmpty := sections[:0]
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}
