// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/cron"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// horizonEnd returns the last bookable date of the rolling window.
func (s *DefaultBookingService) horizonEnd() time.Time {
	return schedule.Midnight(s.now(), s.Loc).AddDate(0, s.Policy.HorizonMonths, 0)
}

func (s *DefaultBookingService) saveSession(ctx context.Context, sessionID string, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sessionID, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) getSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Sessions.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// annotate refreshes the feasibility fields of a session from current
// snapshots.
func (s *DefaultBookingService) annotate(ctx context.Context, session *models.BookingSession) error {
	day, err := time.ParseInLocation(schedule.DateLayout, session.Date, s.Loc)
	if err != nil {
		return schedule.NewInvalidArgumentError("date", "must be a calendar date in YYYY-MM-DD form")
	}

	checker, err := s.loadChecker(ctx, schedule.Midnight(s.now(), s.Loc), s.horizonEnd())
	if err != nil {
		return err
	}

	bookable, err := checker.IsBookable(day, session.ParticipantCount)
	if err != nil {
		return err
	}
	session.Bookable = bookable
	session.Remaining = checker.RemainingCapacity(day)
	return nil
}

// StartSession opens a booking session for a date and group size, annotated
// with current feasibility, and caches it under a fresh session ID.
func (s *DefaultBookingService) StartSession(ctx context.Context, date string, participants int) (string, *models.BookingSession, error) {
	if participants < 1 {
		return "", nil, schedule.NewInvalidArgumentError("participantCount", "must be a positive integer")
	}

	session := &models.BookingSession{
		Date:             date,
		ParticipantCount: participants,
		CreatedAt:        s.now(),
	}
	if err := s.annotate(ctx, session); err != nil {
		return "", nil, err
	}

	sessionID := uuid.New().String()
	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return "", nil, err
	}
	return sessionID, session, nil
}

// UpdateSession replaces the session's selection and group size, then
// re-quotes and re-checks feasibility. A zero count means "keep the current
// group size"; a negative count is a caller error.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID string, selection []models.ServiceOffering, participants int) (*models.BookingSession, error) {
	if participants < 0 {
		return nil, schedule.NewInvalidArgumentError("participantCount", "must not be negative")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if participants > 0 {
		session.ParticipantCount = participants
	}
	session.Offerings = selection

	quote, err := s.Pricing.Quote(selection, session.ParticipantCount)
	if err != nil {
		return nil, err
	}
	session.Quote = quote

	if err := s.annotate(ctx, session); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession turns a session into a persisted booking. The feasibility
// snapshot is advisory; the only authoritative admission check is the
// capacity-guarded transaction inside the repository, so a stale session can
// still fail here with a capacity conflict.
func (s *DefaultBookingService) ConfirmSession(ctx context.Context, sessionID string, participants []models.Participant) (*models.Booking, error) {
	logger := utils.GetLogger()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Offerings) == 0 {
		return nil, schedule.NewInvalidArgumentError("offerings", "no services selected")
	}
	if len(participants) > 0 && len(participants) != session.ParticipantCount {
		return nil, schedule.NewInvalidArgumentError("participants",
			fmt.Sprintf("expected %d participant details, got %d", session.ParticipantCount, len(participants)))
	}

	// Quote once more at confirm time so the persisted totals can never
	// drift from the current price list.
	quote, err := s.Pricing.Quote(session.Offerings, session.ParticipantCount)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:               uuid.New().String(),
		Date:             session.Date,
		ParticipantCount: session.ParticipantCount,
		Participants:     participants,
		Offerings:        session.Offerings,
		TotalPrice:       quote.TotalPrice,
		TotalDiscount:    quote.TotalDiscount,
		Status:           models.BookingConfirmed,
		CreatedAt:        s.now(),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Sessions.Del(ctx, sessionID)
	s.enqueueRecount(logger)

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.Int("participants", booking.ParticipantCount))
	return booking, nil
}

// CancelSession discards a cached session.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// CancelBooking cancels a persisted booking and releases its seats.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.Repo.Cancel(ctx, bookingID); err != nil {
		return err
	}
	s.enqueueRecount(utils.GetLogger())
	return nil
}

// GetBooking fetches a persisted booking by ID.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, bookingID)
}

// enqueueRecount schedules a capacity recount for the rolling window so the
// cached ledger catches up with the write. Best effort; the scheduled
// recount heals anything missed here.
func (s *DefaultBookingService) enqueueRecount(logger *zap.Logger) {
	if s.Queue == nil {
		return
	}
	fromKey := schedule.DateKey(s.now(), s.Loc)
	toKey := schedule.DateKey(s.horizonEnd(), s.Loc)
	task, err := cron.NewCapacityRecountTask(fromKey, toKey)
	if err != nil {
		logger.Warn("failed to build recount task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		logger.Warn("failed to enqueue recount task", zap.Error(err))
	}
}
