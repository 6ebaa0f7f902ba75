// File: utils/constants.go
package utils

import "time"

// CapacityCachePrefix is the prefix used for cached capacity-ledger snapshots.
const CapacityCachePrefix = "capacity:"

// CapacityCacheTTL is the time-to-live for cached capacity-ledger snapshots.
const CapacityCacheTTL = 60 * time.Second

// SessionTTL is the time-to-live for booking sessions.
const SessionTTL = 30 * time.Minute

// CapacityCacheKey builds the cache key for a committed-capacity range.
func CapacityCacheKey(from, to string) string {
	return CapacityCachePrefix + from + ":" + to
}
