package models

// AvailabilityRecord represents one calendar date's operating configuration.
// Date is the unique key, always a plain calendar date ("2006-01-02").
type AvailabilityRecord struct {
	Date        string `bson:"date" json:"date"`
	IsOpen      bool   `bson:"isOpen" json:"isOpen"`
	Capacity    int    `bson:"capacity" json:"capacity"`         // max participants across all bookings on the date
	WindowStart int    `bson:"windowStart" json:"windowStart"`   // minutes from midnight (e.g., 540 for 9:00 AM)
	WindowEnd   int    `bson:"windowEnd" json:"windowEnd"`       // minutes from midnight (e.g., 1020 for 5:00 PM)
}

// CapacityEntry represents aggregate demand already committed to one calendar date.
type CapacityEntry struct {
	Date                  string `bson:"date" json:"date"`
	CommittedParticipants int    `bson:"committedParticipants" json:"committedParticipants"`
}

// DayStatus drives calendar-cell styling.
type DayStatus string

const (
	DayUnavailable     DayStatus = "unavailable"
	DayAvailable       DayStatus = "available"
	DayLimitedCapacity DayStatus = "limitedCapacity"
	DayFullyBooked     DayStatus = "fullyBooked"
)

// CalendarDay is one annotated cell of the booking calendar.
type CalendarDay struct {
	Date      string    `json:"date"`
	Status    DayStatus `json:"status"`
	Remaining int       `json:"remaining"`
	Bookable  bool      `json:"bookable"`
}
