package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

const topDonorLimit = 10

// Statistics - windowed aggregate statistics over listings
type Statistics interface {
	ListingStats(since time.Time, donorID string) (*schema.ListingStats, error)
}

// ListingStats aggregates listings created at or after `since`. An empty
// donorID aggregates everyone; otherwise only that donor's listings.
func (m *mongoDB) ListingStats(since time.Time, donorID string) (*schema.ListingStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match := bson.M{
		"is_active":  true,
		"created_at": bson.M{"$gte": since},
	}
	if donorID != "" {
		match["donor_id"] = donorID
	}

	stats := &schema.ListingStats{
		ByCategory: make([]schema.CategoryCount, 0),
		Daily:      make([]schema.DailyCount, 0),
		TopDonors:  make([]schema.DonorCount, 0),
	}

	// counts by status
	cursor, err := m.listings().Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		return nil, err
	}
	var statusCounts []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &statusCounts); err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.Total += sc.Count
		switch sc.Status {
		case schema.ListingAvailable:
			stats.Available = sc.Count
		case schema.ListingReserved:
			stats.Reserved = sc.Count
		case schema.ListingClaimed:
			stats.Claimed = sc.Count
		}
	}

	// breakdown by food category
	cursor, err = m.listings().Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &stats.ByCategory); err != nil {
		return nil, err
	}

	// daily time series of created listings
	cursor, err = m.listings().Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$created_at",
			}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &stats.Daily); err != nil {
		return nil, err
	}

	// donor leaderboard by listing count
	cursor, err = m.listings().Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":        "$donor_id",
			"donor_name": bson.M{"$first": "$donor_name"},
			"count":      bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": topDonorLimit},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &stats.TopDonors); err != nil {
		return nil, err
	}

	return stats, nil
}
