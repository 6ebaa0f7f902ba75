package schedule

import (
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// Policy carries the configurable booking-window constants.
type Policy struct {
	// HorizonMonths bounds how far ahead bookings may be placed.
	HorizonMonths int
	// LimitedSeatsThreshold is the remaining-seat count at or below which a
	// day is styled "limited" rather than "available".
	LimitedSeatsThreshold int
}

// DefaultPolicy mirrors the production booking window: three months ahead,
// six remaining seats before a day shows as limited.
func DefaultPolicy() Policy {
	return Policy{HorizonMonths: 3, LimitedSeatsThreshold: 6}
}

// FeasibilityChecker answers "can this date take this many more people" over
// two injected snapshots. Every method is a pure function of the snapshots,
// the policy and the clock; nothing here blocks or mutates.
//
// Results are advisory only: the snapshots are a point-in-time view, so two
// callers can both see a date as bookable and race to commit. Authoritative
// admission control happens in the booking repository's capacity-guarded
// transaction, never here.
type FeasibilityChecker struct {
	Catalog *AvailabilityCatalog
	Ledger  *CapacityLedger
	Policy  Policy

	// Now is the clock used to resolve "today". Defaults to time.Now.
	Now func() time.Time
}

func (fc *FeasibilityChecker) now() time.Time {
	if fc.Now != nil {
		return fc.Now()
	}
	return time.Now()
}

// window returns today's midnight and the last bookable midnight, both in
// the business timezone.
func (fc *FeasibilityChecker) window() (today, horizon time.Time) {
	loc := fc.Catalog.Location()
	today = Midnight(fc.now(), loc)
	horizon = today.AddDate(0, fc.Policy.HorizonMonths, 0)
	return today, horizon
}

// IsBookable reports whether a booking for participants people may be placed
// on t's calendar date. Conditions are checked in order and short-circuit:
// the date must not be in the past (today inclusive), must not be beyond the
// booking horizon, must be open in the catalog, and the prospective total
// (committed + requested) must fit within capacity. A request never
// truncates: asking for four seats with one left is rejected outright.
//
// A participant count below one is a caller bug and returns an
// InvalidArgumentError rather than a silent false.
func (fc *FeasibilityChecker) IsBookable(t time.Time, participants int) (bool, error) {
	if participants < 1 {
		return false, NewInvalidArgumentError("participantCount", "must be a positive integer")
	}

	loc := fc.Catalog.Location()
	day := Midnight(t, loc)
	today, horizon := fc.window()

	if day.Before(today) {
		return false, nil
	}
	if day.After(horizon) {
		return false, nil
	}

	rec, ok := fc.Catalog.Lookup(t)
	if !ok || !rec.IsOpen {
		return false, nil
	}

	return fc.Ledger.CommittedCount(t)+participants <= rec.Capacity, nil
}

// RemainingCapacity returns how many seats are still free on t's calendar
// date: capacity minus committed when the date is open and present, zero
// otherwise. Never negative.
func (fc *FeasibilityChecker) RemainingCapacity(t time.Time) int {
	rec, ok := fc.Catalog.Lookup(t)
	if !ok || !rec.IsOpen {
		return 0
	}
	remaining := rec.Capacity - fc.Ledger.CommittedCount(t)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Classify maps t's calendar date to a calendar-cell state. Unlike
// IsBookable it is independent of any particular participant count.
func (fc *FeasibilityChecker) Classify(t time.Time) models.DayStatus {
	loc := fc.Catalog.Location()
	day := Midnight(t, loc)
	today, horizon := fc.window()

	if day.Before(today) || day.After(horizon) {
		return models.DayUnavailable
	}

	rec, ok := fc.Catalog.Lookup(t)
	if !ok || !rec.IsOpen {
		return models.DayUnavailable
	}

	remaining := fc.RemainingCapacity(t)
	switch {
	case remaining == 0:
		return models.DayFullyBooked
	case remaining <= fc.Policy.LimitedSeatsThreshold:
		return models.DayLimitedCapacity
	default:
		return models.DayAvailable
	}
}
