package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/altitut/FundingMatch-sub001/core"
)

// Key prefixes for different data types
const (
	opportunityPrefix = "opprec"
	agencyIndexPrefix = "oppagn"
	profilePrefix     = "prorec"
	checkpointPrefix  = "chkrec"
	lastPurgeKey      = "chkmeta:lastpurge"
)

// makeOpportunityKey generates a key for an opportunity by ID.
func makeOpportunityKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", opportunityPrefix, id))
}

// makeProfileKey generates a key for a researcher profile by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profilePrefix, id))
}

// makeAgencyIndexKey generates a secondary index key mapping an agency to an
// opportunity ID. The value is empty; the key itself carries the association.
func makeAgencyIndexKey(agency string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", agencyIndexPrefix, agency, id))
}

// agencyScanPrefix returns the iteration prefix for one agency's index entries.
func agencyScanPrefix(agency string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", agencyIndexPrefix, agency))
}

// makeCheckpointKey generates a key for an ingest checkpoint by opportunity ID.
// The ID is written in BigEndian order so lexicographic sort matches numeric order.
func makeCheckpointKey(id core.ID) []byte {
	prefix := checkpointPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
