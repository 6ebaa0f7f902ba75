// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, rec models.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rec.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative")
	}

	filter := bson.M{"date": rec.Date}
	update := bson.M{"$set": rec}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability for %s: %w", rec.Date, err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) UpsertMany(ctx context.Context, recs []models.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(recs))
	for _, rec := range recs {
		if rec.Capacity < 0 {
			return fmt.Errorf("capacity must not be negative on %s", rec.Date)
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"date": rec.Date}).
			SetUpdate(bson.M{"$set": rec}).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return nil
	}

	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to bulk upsert availability: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) GetByDate(ctx context.Context, date string) (*models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.AvailabilityRecord
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *mongoAvailabilityRepo) FetchRange(ctx context.Context, from, to string) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Calendar-date strings sort lexicographically, so a plain range filter works.
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability range: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []models.AvailabilityRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
