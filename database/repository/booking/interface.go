// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/database"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCapacityConflict is returned when a booking cannot be admitted because
// the day's committed participants would exceed its capacity. This is the
// authoritative commit-time check; the advisory feasibility core never
// guarantees admission.
var ErrCapacityConflict = errors.New("insufficient remaining capacity for date")

// BookingRepository persists bookings and maintains the per-date committed
// participant counters.
type BookingRepository interface {
	// Create inserts the booking and increments the day counter in one
	// transaction, failing with ErrCapacityConflict when the prospective
	// total would exceed the date's capacity.
	Create(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, bookingID string) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)

	// CommittedCapacity reads the per-date counters for an inclusive range.
	CommittedCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error)
	// RecountCapacity recomputes the counters for a range from the bookings
	// themselves and rewrites them, healing any drift.
	RecountCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error)

	EnsureIndexes() error
}

type mongoBookingRepo struct {
	bookingColl  *mongo.Collection
	capacityColl *mongo.Collection
	availColl    *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("signoffs")
	return &mongoBookingRepo{
		bookingColl:  db.Collection("bookings"),
		capacityColl: db.Collection("capacity"),
		availColl:    db.Collection("availability"),
	}
}
