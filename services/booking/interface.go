package booking

import (
	"context"
	"time"

	availabilityRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/availability"
	bookingRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingService drives the customer booking funnel: the annotated calendar,
// running quotes, and redis-backed sessions that end in a committed booking.
type BookingService interface {
	Calendar(ctx context.Context, from, to time.Time, participants int) ([]models.CalendarDay, error)
	QuoteSelection(selection []models.ServiceOffering, participants int) (models.Quote, error)

	StartSession(ctx context.Context, date string, participants int) (string, *models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, selection []models.ServiceOffering, participants int) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, sessionID string, participants []models.Participant) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error

	CancelBooking(ctx context.Context, bookingID string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Repo             bookingRepo.BookingRepository
	Pricing          *schedule.PricingEngine
	Policy           schedule.Policy
	Loc              *time.Location

	Sessions *redis.Client // booking sessions
	Cache    *redis.Client // capacity ledger snapshots
	Queue    *asynq.Client // recount tasks after booking writes

	// Now is the clock used to resolve "today". Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
