package booking

import "errors"

// ErrSessionNotFound is returned when a booking session has expired or never
// existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")
