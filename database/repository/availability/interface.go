// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/database"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists per-date operating configuration.
// Dates are always "2006-01-02" strings; range bounds are inclusive.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, rec models.AvailabilityRecord) error
	UpsertMany(ctx context.Context, recs []models.AvailabilityRecord) error
	GetByDate(ctx context.Context, date string) (*models.AvailabilityRecord, error)
	FetchRange(ctx context.Context, from, to string) ([]models.AvailabilityRecord, error)
	Delete(ctx context.Context, date string) error
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("signoffs")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
