package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical content
// always maps to the same entity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Opportunity represents a single funding opportunity ingested from a CSV
// export (NSF, SBIR, or a generic agency listing).
// It may be enriched with an embedding vector during ingestion.
type Opportunity struct {
	Id              ID
	Title           string
	Description     string
	Agency          string
	Program         string
	ProgramID       string
	TopicNumber     string
	Phase           string
	AwardType       string
	Keywords        []string
	URL             string
	SolicitationURL string
	Status          string
	PostedDate      string // Raw date string as ingested
	OpenDate        string
	CloseDate       string // Raw deadline string; parsed on demand by ParseDeadline
	AcceptsAnytime  bool
	Vector          []float32 // Embedding vector for semantic search (populated by the pipeline)
	InsertedAt      time.Time
	UpdatedAt       time.Time
	Metadata        map[string]string
}

// IdentityKey returns the string whose hash identifies this opportunity.
// Two rows with the same title, agency, program ID, and topic number are
// the same opportunity regardless of which CSV they came from.
func (o *Opportunity) IdentityKey() string {
	return o.Title + o.Agency + o.ProgramID + o.TopicNumber
}

// EmbeddingText builds the text representation used to embed the opportunity.
// Long fields are truncated so one oversized synopsis does not dominate the vector.
func (o *Opportunity) EmbeddingText() string {
	sections := make([]string, 0, 6)
	if o.Title != "" {
		sections = append(sections, "Title: "+o.Title)
	}
	if o.Agency != "" {
		sections = append(sections, "Agency: "+o.Agency)
	}
	if o.Description != "" {
		sections = append(sections, "Description: "+Truncate(o.Description, 500))
	}
	if o.Program != "" {
		sections = append(sections, "Program: "+o.Program)
	}
	if len(o.Keywords) > 0 {
		sections = append(sections, "Keywords: "+strings.Join(o.Keywords, ", "))
	}
	if o.Phase != "" {
		sections = append(sections, "Phase: "+o.Phase)
	}
	return strings.Join(sections, " ")
}

// ResearcherProfile represents a researcher assembled from a person JSON
// document and any supplied supporting-document text.
type ResearcherProfile struct {
	Id                ID
	Name              string
	Summary           string
	ResearchInterests []string
	Education         []string // One entry per degree, formatted by the profile builder
	Awards            []string
	Experience        string
	Publications      string
	Skills            string
	CombinedText      string    // Full text representation used for embedding
	Vector            []float32 // Embedding vector (populated when the profile is stored)
	InsertedAt        time.Time
	UpdatedAt         time.Time
}

// IngestCheckpoint records that an opportunity has been ingested, together
// with its expiration so re-runs can skip duplicates and purge stale entries.
type IngestCheckpoint struct {
	OpportunityId ID
	Title         string
	ProcessedAt   time.Time
	ExpiresAt     time.Time // Deadline when one parses, otherwise a fixed TTL
}

// SearchResult represents a vector-similarity hit against the opportunity store.
type SearchResult struct {
	Opportunity *Opportunity
	Score       float32
}

// MatchResult represents a ranked funding match for a researcher profile.
type MatchResult struct {
	Opportunity  *Opportunity
	Similarity   float32 // Raw cosine similarity from the vector search
	KeywordBoost float64 // Points added for interest/keyword overlap
	Confidence   float64 // 0-100 confidence score
	Explanation  string  // Optional RAG explanation
}

// Truncate shortens s to at most n runes. Used when assembling embedding
// text so field limits count characters, not bytes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
