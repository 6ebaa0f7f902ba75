package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Participant is one person attending a session.
type Participant struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Booking is a confirmed reservation for a calendar date.
type Booking struct {
	ID               string            `bson:"id" json:"id"`
	Date             string            `bson:"date" json:"date"` // "2006-01-02"
	ParticipantCount int               `bson:"participantCount" json:"participantCount"`
	Participants     []Participant     `bson:"participants,omitempty" json:"participants,omitempty"`
	Offerings        []ServiceOffering `bson:"offerings" json:"offerings"`
	TotalPrice       float64           `bson:"totalPrice" json:"totalPrice"`
	TotalDiscount    float64           `bson:"totalDiscount" json:"totalDiscount"`
	Status           string            `bson:"status" json:"status"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
}

// BookingSession is the ephemeral state of one booking funnel, cached in Redis.
type BookingSession struct {
	Date             string            `json:"date"`
	ParticipantCount int               `json:"participantCount"`
	Offerings        []ServiceOffering `json:"offerings"`
	Quote            Quote             `json:"quote"`
	Bookable         bool              `json:"bookable"`
	Remaining        int               `json:"remaining"`
	CreatedAt        time.Time         `json:"createdAt"`
}
