package schedule

import (
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// CapacityLedger is an immutable snapshot of how many participants are
// already committed to each calendar date. A date absent from the ledger has
// zero committed participants.
type CapacityLedger struct {
	committed map[string]int
	loc       *time.Location
}

// NewCapacityLedger builds a ledger from a fetched snapshot. Rows with a
// negative count are skipped; duplicate dates accumulate.
func NewCapacityLedger(entries []models.CapacityEntry, loc *time.Location) *CapacityLedger {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.CommittedParticipants < 0 {
			continue
		}
		m[e.Date] += e.CommittedParticipants
	}
	return &CapacityLedger{committed: m, loc: loc}
}

// CommittedCount returns the committed participant total for t's calendar
// date, zero when the date is absent. Same normalization as the catalog.
func (l *CapacityLedger) CommittedCount(t time.Time) int {
	return l.committed[DateKey(t, l.loc)]
}
