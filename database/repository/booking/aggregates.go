// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// CommittedCapacity reads the maintained per-date counters for an inclusive
// date range. This is the fast path the capacity ledger snapshot comes from.
func (repo *mongoBookingRepo) CommittedCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := repo.capacityColl.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch committed capacity: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.CapacityEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RecountCapacity recomputes the per-date counters from confirmed bookings
// and rewrites the counter documents. The scheduled worker runs this to heal
// any drift between the counters and the bookings themselves.
func (repo *mongoBookingRepo) RecountCapacity(ctx context.Context, from, to string) ([]models.CapacityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": models.BookingConfirmed,
			"date":   bson.M{"$gte": from, "$lte": to},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":                   "$date",
			"committedParticipants": bson.M{"$sum": "$participantCount"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := repo.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate committed capacity: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date                  string `bson:"_id"`
		CommittedParticipants int    `bson:"committedParticipants"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	entries := make([]models.CapacityEntry, 0, len(rows))
	writes := make([]mongo.WriteModel, 0, len(rows))
	for _, row := range rows {
		entry := models.CapacityEntry{Date: row.Date, CommittedParticipants: row.CommittedParticipants}
		entries = append(entries, entry)
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"date": entry.Date}).
			SetUpdate(bson.M{"$set": bson.M{"committedParticipants": entry.CommittedParticipants}}).
			SetUpsert(true))
	}
	if len(writes) > 0 {
		if _, err := repo.capacityColl.BulkWrite(ctx, writes); err != nil {
			return nil, fmt.Errorf("failed to rewrite day counters: %w", err)
		}
	}
	return entries, nil
}
