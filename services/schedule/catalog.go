package schedule

import (
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// AvailabilityCatalog is an immutable snapshot of per-date operating
// configuration, keyed by calendar date. A date absent from the catalog is
// treated the same as a closed date.
type AvailabilityCatalog struct {
	records map[string]models.AvailabilityRecord
	loc     *time.Location
}

// NewAvailabilityCatalog builds a catalog from a fetched snapshot. Records
// with a negative capacity are clamped to zero; on duplicate dates the last
// record wins.
func NewAvailabilityCatalog(records []models.AvailabilityRecord, loc *time.Location) *AvailabilityCatalog {
	m := make(map[string]models.AvailabilityRecord, len(records))
	for _, rec := range records {
		if rec.Capacity < 0 {
			rec.Capacity = 0
		}
		m[rec.Date] = rec
	}
	return &AvailabilityCatalog{records: m, loc: loc}
}

// Lookup returns the record for t's calendar date. The time-of-day and
// timezone of t are ignored; only the calendar date in the catalog's
// business timezone matters.
func (c *AvailabilityCatalog) Lookup(t time.Time) (models.AvailabilityRecord, bool) {
	rec, ok := c.records[DateKey(t, c.loc)]
	return rec, ok
}

// Location returns the business timezone the catalog normalizes dates into.
func (c *AvailabilityCatalog) Location() *time.Location {
	return c.loc
}
