// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
)

// Create inserts the booking and bumps the day's committed counter inside a
// single transaction. The counter update is guarded so the prospective total
// never exceeds the date's capacity; MatchedCount == 0 on the guarded update
// means another booking won the remaining seats first.
func (repo *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var avail models.AvailabilityRecord
		err := repo.availColl.FindOne(sc, bson.M{"date": booking.Date}).Decode(&avail)
		if err == mongo.ErrNoDocuments {
			return ErrCapacityConflict
		}
		if err != nil {
			return fmt.Errorf("failed to load availability for %s: %w", booking.Date, err)
		}
		if !avail.IsOpen || booking.ParticipantCount > avail.Capacity {
			return ErrCapacityConflict
		}

		// Admit only while committed + n <= capacity still holds.
		filter := bson.M{
			"date":                  booking.Date,
			"committedParticipants": bson.M{"$lte": avail.Capacity - booking.ParticipantCount},
		}
		update := bson.M{"$inc": bson.M{"committedParticipants": booking.ParticipantCount}}
		res, err := repo.capacityColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update day counter: %w", err)
		}
		if res.MatchedCount == 0 {
			// Either the counter document does not exist yet, or the date is
			// full. Distinguish by trying to create the counter; the unique
			// date index turns a concurrent create into a conflict.
			count, err := repo.capacityColl.CountDocuments(sc, bson.M{"date": booking.Date})
			if err != nil {
				return fmt.Errorf("failed to inspect day counter: %w", err)
			}
			if count > 0 {
				return ErrCapacityConflict
			}
			entry := models.CapacityEntry{
				Date:                  booking.Date,
				CommittedParticipants: booking.ParticipantCount,
			}
			if _, err := repo.capacityColl.InsertOne(sc, entry); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					return ErrCapacityConflict
				}
				return fmt.Errorf("failed to create day counter: %w", err)
			}
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

// Cancel flips the booking to cancelled and releases its seats.
func (repo *mongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var booking models.Booking
		filter := bson.M{"id": bookingID, "status": models.BookingConfirmed}
		err := repo.bookingColl.FindOneAndUpdate(sc, filter,
			bson.M{"$set": bson.M{"status": models.BookingCancelled}}).Decode(&booking)
		if err == mongo.ErrNoDocuments {
			return mongo.ErrNoDocuments
		}
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		update := bson.M{"$inc": bson.M{"committedParticipants": -booking.ParticipantCount}}
		if _, err := repo.capacityColl.UpdateOne(sc, bson.M{"date": booking.Date}, update); err != nil {
			return fmt.Errorf("failed to release day counter: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

func (repo *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, bson.M{"date": date, "status": models.BookingConfirmed})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
