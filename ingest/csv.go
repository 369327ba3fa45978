package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/altitut/FundingMatch-sub001/core"
)

// Format identifies the column layout of a CSV export.
type Format int

const (
	// FormatGeneric covers CSV files with unrecognized layouts.
	FormatGeneric Format = iota
	// FormatNSF covers NSF funding opportunity exports.
	FormatNSF
	// FormatSBIR covers SBIR/STTR topic exports.
	FormatSBIR
)

func (f Format) String() string {
	switch f {
	case FormatNSF:
		return "nsf"
	case FormatSBIR:
		return "sbir"
	default:
		return "generic"
	}
}

// DetectFormat guesses the CSV layout from the file name.
func DetectFormat(filename string) Format {
	name := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.Contains(name, "nsf"):
		return FormatNSF
	case strings.Contains(name, "sbir"), strings.Contains(name, "topics"):
		return FormatSBIR
	default:
		return FormatGeneric
	}
}

// row pairs a CSV record with its header for name-based access.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(name string) string {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

func (r row) getAny(names ...string) string {
	for _, name := range names {
		if v := r.get(name); v != "" {
			return v
		}
	}
	return ""
}

// readRows reads all CSV records, returning them with a header index.
// Rows with a different field count than the header are tolerated.
func readRows(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}

	rows := make([]row, 0, len(records)-1)
	for _, fields := range records[1:] {
		rows = append(rows, row{header: header, fields: fields})
	}
	return rows, nil
}

// ParseNSF parses an NSF funding opportunity export.
func ParseNSF(r io.Reader) ([]*core.Opportunity, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	opps := make([]*core.Opportunity, 0, len(rows))
	for _, row := range rows {
		opps = append(opps, &core.Opportunity{
			Title:           row.get("Title"),
			Description:     row.get("Synopsis"),
			Agency:          "NSF",
			ProgramID:       row.get("Program ID"),
			AwardType:       row.get("Award Type"),
			CloseDate:       row.get("Next due date (Y-m-d)"),
			PostedDate:      row.get("Posted date (Y-m-d)"),
			URL:             row.get("URL"),
			SolicitationURL: row.get("Solicitation URL"),
			Status:          row.get("Status"),
			AcceptsAnytime:  row.get("Proposals accepted anytime") == "True",
		})
	}
	return opps, nil
}

// ParseSBIR parses an SBIR/STTR topic export.
func ParseSBIR(r io.Reader) ([]*core.Opportunity, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	opps := make([]*core.Opportunity, 0, len(rows))
	for _, row := range rows {
		program := row.get("Program")
		if program == "" {
			program = "SBIR"
		}

		opp := &core.Opportunity{
			Title:           row.get("Topic Title"),
			Description:     row.get("Topic Description"),
			Agency:          row.get("Agency"),
			Program:         program,
			Phase:           row.get("Phase"),
			TopicNumber:     row.get("Topic Number"),
			CloseDate:       row.get("Close Date"),
			OpenDate:        row.get("Open Date"),
			URL:             row.get("Solicitation Agency URL"),
			SolicitationURL: row.get("SBIRTopicLink"),
			Status:          row.get("Solicitation Status"),
		}

		if branch := row.get("Branch"); branch != "" {
			opp.Metadata = map[string]string{"branch": branch}
		}
		if year := row.get("Solicitation Year"); year != "" {
			if opp.Metadata == nil {
				opp.Metadata = map[string]string{}
			}
			opp.Metadata["year"] = year
		}

		opps = append(opps, opp)
	}
	return opps, nil
}

// ParseGeneric parses a CSV file with an unrecognized layout.
// Key fields are mapped from common column names; every other column
// is preserved in the opportunity's metadata.
func ParseGeneric(r io.Reader) ([]*core.Opportunity, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	known := map[string]bool{
		"Title": true, "Name": true,
		"Description": true, "Synopsis": true,
		"Agency": true, "Organization": true,
	}

	opps := make([]*core.Opportunity, 0, len(rows))
	for _, row := range rows {
		opp := &core.Opportunity{
			Title:       row.getAny("Title", "Name"),
			Description: row.getAny("Description", "Synopsis"),
			Agency:      row.getAny("Agency", "Organization"),
			CloseDate:   row.getAny("Close Date", "Deadline"),
		}

		for name := range row.header {
			if known[name] || name == "Close Date" || name == "Deadline" {
				continue
			}
			if v := row.get(name); v != "" {
				if opp.Metadata == nil {
					opp.Metadata = map[string]string{}
				}
				opp.Metadata[name] = v
			}
		}

		opps = append(opps, opp)
	}
	return opps, nil
}

// ParseFile parses a CSV file, dispatching on the layout detected from
// its name.
func ParseFile(path string) ([]*core.Opportunity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opps []*core.Opportunity
	switch DetectFormat(path) {
	case FormatNSF:
		opps, err = ParseNSF(f)
	case FormatSBIR:
		opps, err = ParseSBIR(f)
	default:
		opps, err = ParseGeneric(f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return opps, nil
}
