package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"go.uber.org/zap"
)

// loadChecker fetches the availability and capacity snapshots for an
// inclusive date range and wraps them in a feasibility checker. The two
// fetches are independent and run concurrently; the committed-capacity side
// prefers the cached ledger and falls back to the repository.
func (s *DefaultBookingService) loadChecker(ctx context.Context, from, to time.Time) (*schedule.FeasibilityChecker, error) {
	fromKey := schedule.DateKey(from, s.Loc)
	toKey := schedule.DateKey(to, s.Loc)

	var (
		wg       sync.WaitGroup
		records  []models.AvailabilityRecord
		entries  []models.CapacityEntry
		availErr error
		capErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		records, availErr = s.AvailabilityRepo.FetchRange(ctx, fromKey, toKey)
	}()
	go func() {
		defer wg.Done()
		entries, capErr = s.committedCapacity(ctx, fromKey, toKey)
	}()
	wg.Wait()

	if availErr != nil {
		return nil, fmt.Errorf("failed to fetch availability snapshot: %w", availErr)
	}
	if capErr != nil {
		return nil, fmt.Errorf("failed to fetch capacity snapshot: %w", capErr)
	}

	return &schedule.FeasibilityChecker{
		Catalog: schedule.NewAvailabilityCatalog(records, s.Loc),
		Ledger:  schedule.NewCapacityLedger(entries, s.Loc),
		Policy:  s.Policy,
		Now:     s.Now,
	}, nil
}

// committedCapacity reads the per-date counters, going through the redis
// cache when one is wired. Cache failures degrade to the repository rather
// than failing the request.
func (s *DefaultBookingService) committedCapacity(ctx context.Context, fromKey, toKey string) ([]models.CapacityEntry, error) {
	logger := utils.GetLogger()
	key := utils.CapacityCacheKey(fromKey, toKey)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var entries []models.CapacityEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			logger.Warn("discarding unreadable capacity cache entry", zap.String("key", key))
		}
	}

	entries, err := s.Repo.CommittedCapacity(ctx, fromKey, toKey)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.CapacityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache capacity snapshot", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return entries, nil
}

// Calendar returns one annotated cell per calendar date in [from, to],
// inclusive, for a prospective group of the given size. Status and remaining
// seats are count-independent; the bookable flag is not.
func (s *DefaultBookingService) Calendar(ctx context.Context, from, to time.Time, participants int) ([]models.CalendarDay, error) {
	if participants < 1 {
		return nil, schedule.NewInvalidArgumentError("participantCount", "must be a positive integer")
	}

	start := schedule.Midnight(from, s.Loc)
	end := schedule.Midnight(to, s.Loc)
	if end.Before(start) {
		return nil, schedule.NewInvalidArgumentError("dateRange", "end date precedes start date")
	}

	checker, err := s.loadChecker(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var days []models.CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		status := checker.Classify(d)
		remaining := 0
		if status != models.DayUnavailable {
			remaining = checker.RemainingCapacity(d)
		}
		bookable, err := checker.IsBookable(d, participants)
		if err != nil {
			return nil, err
		}
		days = append(days, models.CalendarDay{
			Date:      schedule.DateKey(d, s.Loc),
			Status:    status,
			Remaining: remaining,
			Bookable:  bookable,
		})
	}
	return days, nil
}

// QuoteSelection computes the running total for a selection. Thin passthrough
// to the pricing engine so handlers and sessions share one code path.
func (s *DefaultBookingService) QuoteSelection(selection []models.ServiceOffering, participants int) (models.Quote, error) {
	return s.Pricing.Quote(selection, participants)
}
