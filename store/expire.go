package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

// ExpiryOperator - expires listings whose exact expiry timestamp has
// passed. Listings carrying only the free-text expiry descriptor are
// never auto-expired.
type ExpiryOperator interface {
	ExpireListings(now time.Time) ([]schema.Listing, error)
}

// ExpireListings flips overdue available/reserved listings to expired and
// returns the affected records so callers can notify and broadcast. The
// find-then-update pair is not atomic; a listing claimed in between keeps
// its claimed status since the update filter re-checks the state.
func (m *mongoDB) ExpireListings(now time.Time) ([]schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"is_active":  true,
		"status":     bson.M{"$in": bson.A{schema.ListingAvailable, schema.ListingReserved}},
		"expires_at": bson.M{"$lte": now},
	}

	cursor, err := m.listings().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	overdue := make([]schema.Listing, 0)
	if err := cursor.All(ctx, &overdue); err != nil {
		return nil, err
	}
	if len(overdue) == 0 {
		return overdue, nil
	}

	ids := make([]interface{}, 0, len(overdue))
	for _, l := range overdue {
		ids = append(ids, l.ID)
	}

	_, err = m.listings().UpdateMany(ctx,
		bson.M{
			"_id":    bson.M{"$in": ids},
			"status": bson.M{"$in": bson.A{schema.ListingAvailable, schema.ListingReserved}},
		},
		bson.M{"$set": bson.M{
			"status":     schema.ListingExpired,
			"updated_at": now,
		}},
	)
	if err != nil {
		return nil, err
	}

	for i := range overdue {
		overdue[i].Status = schema.ListingExpired
	}

	return overdue, nil
}
