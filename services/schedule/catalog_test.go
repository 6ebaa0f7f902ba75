package schedule

import (
	"testing"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

func TestCatalogLookupNormalizesCalendarDates(t *testing.T) {
	catalog := NewAvailabilityCatalog([]models.AvailabilityRecord{
		{Date: "2026-09-05", IsOpen: true, Capacity: 12},
	}, time.UTC)

	// Different instants on the same calendar day must hit the same record.
	instants := []time.Time{
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 23, 59, 59, 0, time.UTC),
		// 14:30+10:00 is 04:30 UTC on the same calendar day.
		time.Date(2026, 9, 5, 14, 30, 0, 0, time.FixedZone("AEST", 10*3600)),
	}
	for _, ts := range instants {
		rec, ok := catalog.Lookup(ts)
		if !ok {
			t.Fatalf("expected record for %v", ts)
		}
		if rec.Capacity != 12 {
			t.Errorf("expected capacity 12 for %v, got %d", ts, rec.Capacity)
		}
	}

	// An instant that falls on the previous UTC calendar day must not match.
	early := time.Date(2026, 9, 5, 8, 30, 0, 0, time.FixedZone("AEST", 10*3600))
	if _, ok := catalog.Lookup(early); ok {
		t.Errorf("expected no record for %v (UTC calendar date is 2026-09-04)", early)
	}
}

func TestCatalogAbsentDateIsClosed(t *testing.T) {
	catalog := NewAvailabilityCatalog(nil, time.UTC)
	if _, ok := catalog.Lookup(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("expected absent date to have no record")
	}
}

func TestCatalogClampsNegativeCapacity(t *testing.T) {
	catalog := NewAvailabilityCatalog([]models.AvailabilityRecord{
		{Date: "2026-09-05", IsOpen: true, Capacity: -3},
	}, time.UTC)
	rec, ok := catalog.Lookup(time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected record")
	}
	if rec.Capacity != 0 {
		t.Errorf("expected negative capacity clamped to 0, got %d", rec.Capacity)
	}
}

func TestLedgerCommittedCount(t *testing.T) {
	ledger := NewCapacityLedger([]models.CapacityEntry{
		{Date: "2026-09-05", CommittedParticipants: 8},
		{Date: "2026-09-05", CommittedParticipants: 2}, // duplicates accumulate
		{Date: "2026-09-06", CommittedParticipants: -1}, // invalid rows are skipped
	}, time.UTC)

	if got := ledger.CommittedCount(time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)); got != 10 {
		t.Errorf("expected 10 committed on 2026-09-05, got %d", got)
	}
	if got := ledger.CommittedCount(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("expected 0 committed on 2026-09-06, got %d", got)
	}
	if got := ledger.CommittedCount(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("expected 0 committed on absent date, got %d", got)
	}
}
