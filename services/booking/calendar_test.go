package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeAvailabilityRepo serves a fixed snapshot from memory.
type fakeAvailabilityRepo struct {
	records []models.AvailabilityRecord
}

func (f *fakeAvailabilityRepo) Upsert(ctx context.Context, rec models.AvailabilityRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAvailabilityRepo) UpsertMany(ctx context.Context, recs []models.AvailabilityRecord) error {
	f.records = append(f.records, recs...)
	return nil
}

func (f *fakeAvailabilityRepo) GetByDate(ctx context.Context, date string) (*models.AvailabilityRecord, error) {
	for _, rec := range f.records {
		if rec.Date == date {
			return &rec, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAvailabilityRepo) FetchRange(ctx context.Context, from, to string) ([]models.AvailabilityRecord, error) {
	var out []models.AvailabilityRecord
	for _, rec := range f.records {
		if rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Delete(ctx context.Context, date string) error { return nil }
func (f *fakeAvailabilityRepo) EnsureIndexes() error                          { return nil }

// fakeBookingRepo serves fixed committed counts from memory.
type fakeBookingRepo struct {
	entries []models.CapacityEntry
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error { return nil }
func (f *fakeBookingRepo) Cancel(ctx context.Context, bookingID string) error        { return nil }

func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CommittedCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error) {
	var out []models.CapacityEntry
	for _, e := range f.entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) RecountCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error) {
	return f.CommittedCapacity(ctx, from, to)
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func newTestService() *DefaultBookingService {
	availRepo := &fakeAvailabilityRepo{records: []models.AvailabilityRecord{
		{Date: "2026-09-01", IsOpen: true, Capacity: 10},
		{Date: "2026-09-02", IsOpen: false, Capacity: 10},
		{Date: "2026-09-04", IsOpen: true, Capacity: 10},
	}}
	bookRepo := &fakeBookingRepo{entries: []models.CapacityEntry{
		{Date: "2026-09-01", CommittedParticipants: 2},
		{Date: "2026-09-04", CommittedParticipants: 10},
	}}

	return &DefaultBookingService{
		AvailabilityRepo: availRepo,
		Repo:             bookRepo,
		Pricing: schedule.NewPricingEngine(models.PriceList{
			FullPackage:   995,
			GroupPackage:  499,
			TestReadiness: 150,
		}, nil),
		Policy: schedule.DefaultPolicy(),
		Loc:    time.UTC,
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestCalendarAnnotatesRange(t *testing.T) {
	svc := newTestService()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	days, err := svc.Calendar(context.Background(), from, to, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}

	want := []models.CalendarDay{
		{Date: "2026-09-01", Status: models.DayAvailable, Remaining: 8, Bookable: true},
		{Date: "2026-09-02", Status: models.DayUnavailable, Remaining: 0, Bookable: false},
		{Date: "2026-09-03", Status: models.DayUnavailable, Remaining: 0, Bookable: false},
		{Date: "2026-09-04", Status: models.DayFullyBooked, Remaining: 0, Bookable: false},
	}
	for i, w := range want {
		if days[i] != w {
			t.Errorf("day %d: got %+v, want %+v", i, days[i], w)
		}
	}
}

func TestCalendarBookableTracksGroupSize(t *testing.T) {
	svc := newTestService()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	days, err := svc.Calendar(context.Background(), from, from, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !days[0].Bookable {
		t.Error("expected 8 participants to fit into 8 remaining seats")
	}

	days, err = svc.Calendar(context.Background(), from, from, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days[0].Bookable {
		t.Error("expected 9 participants to be rejected with 8 remaining seats")
	}
}

func TestCalendarRejectsInvalidInput(t *testing.T) {
	svc := newTestService()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Calendar(context.Background(), from, from, 0); !schedule.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for zero participants, got %v", err)
	}

	earlier := from.AddDate(0, 0, -3)
	if _, err := svc.Calendar(context.Background(), from, earlier, 2); !schedule.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for reversed range, got %v", err)
	}
}

func TestQuoteSelectionDelegatesToEngine(t *testing.T) {
	svc := newTestService()

	quote, err := svc.QuoteSelection([]models.ServiceOffering{models.GroupPackage}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 1317.36 {
		t.Errorf("expected total 1317.36, got %.2f", quote.TotalPrice)
	}
	if quote.TotalDiscount != 179.64 {
		t.Errorf("expected discount 179.64, got %.2f", quote.TotalDiscount)
	}
}
