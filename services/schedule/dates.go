package schedule

import "time"

// DateLayout is the canonical calendar-date key format used across the
// catalog, ledger and persistence layers.
const DateLayout = "2006-01-02"

// DateKey collapses any instant to its calendar date in loc. Two instants on
// the same calendar day must always resolve to the same key regardless of
// their time-of-day or source timezone; every lookup in this package goes
// through here.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// Midnight returns 00:00 of t's calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
