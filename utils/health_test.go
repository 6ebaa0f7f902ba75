package utils

import (
	"testing"
	"time"
)

func TestWorkerAlive(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		last time.Time
		want bool
	}{
		{"never beaten", time.Time{}, false},
		{"fresh heartbeat", now.Add(-time.Minute), true},
		{"exactly at max age", now.Add(-WorkerHeartbeatMaxAge), true},
		{"one second past max age", now.Add(-WorkerHeartbeatMaxAge - time.Second), false},
		{"hours stale", now.Add(-3 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := workerAlive(tc.last, now); got != tc.want {
				t.Errorf("workerAlive(%v, %v) = %v, want %v", tc.last, now, got, tc.want)
			}
		})
	}
}

func TestMarkWorkerAliveFeedsSnapshot(t *testing.T) {
	MarkWorkerAlive()

	mu.RLock()
	last := lastHeartbeat
	mu.RUnlock()

	if !workerAlive(last, time.Now()) {
		t.Error("expected a just-recorded heartbeat to count as alive")
	}
}
