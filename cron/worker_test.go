package cron

import (
	"testing"
	"time"
)

func TestResolveWindowUsesBusinessTimezone(t *testing.T) {
	canberra := time.FixedZone("AEST", 10*3600)
	// 15:00 UTC on Sep 1 is already 01:00 on Sep 2 in the business timezone;
	// the window must follow the business calendar, not the server's.
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	p := resolveWindow(RecountPayload{}, now, canberra, 3)
	if p.From != "2026-09-02" {
		t.Errorf("expected window to start on 2026-09-02, got %s", p.From)
	}
	if p.To != "2026-12-02" {
		t.Errorf("expected window to end on 2026-12-02, got %s", p.To)
	}

	p = resolveWindow(RecountPayload{}, now, time.UTC, 3)
	if p.From != "2026-09-01" || p.To != "2026-12-01" {
		t.Errorf("expected UTC window 2026-09-01..2026-12-01, got %s..%s", p.From, p.To)
	}
}

func TestResolveWindowKeepsExplicitRange(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	explicit := RecountPayload{From: "2026-10-01", To: "2026-10-31"}

	p := resolveWindow(explicit, now, time.UTC, 3)
	if p != explicit {
		t.Errorf("expected explicit range to pass through unchanged, got %+v", p)
	}
}
