package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

var ErrClaimNotFound = fmt.Errorf("no live claim found")

// ClaimLedger - reservation/claim records against listings. Many claims
// may exist per listing over time but at most one per (listing, claimant)
// pair should be live, enforced by upgrade-in-place rather than a unique
// constraint.
type ClaimLedger interface {
	GetLiveClaim(listingID primitive.ObjectID, claimantID string) (*schema.Claim, error)
	GetLiveClaimByListing(listingID primitive.ObjectID) (*schema.Claim, error)
	ListClaimsByClaimant(claimantID, status string, page, pageSize int64) ([]schema.Claim, int64, error)
	ListClaimsByListing(listingID primitive.ObjectID) ([]schema.Claim, error)
}

func (m *mongoDB) claims() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ClaimCollection)
}

// GetLiveClaim returns the pending or confirmed claim of one claimant on
// one listing, if any.
func (m *mongoDB) GetLiveClaim(listingID primitive.ObjectID, claimantID string) (*schema.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var claim schema.Claim
	err := m.claims().FindOne(ctx, bson.M{
		"listing_id":  listingID,
		"claimant_id": claimantID,
		"status":      bson.M{"$in": schema.LiveClaimStates},
	}).Decode(&claim)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	return &claim, nil
}

// GetLiveClaimByListing returns the current live claim on a listing
// regardless of claimant. Used to find the chat counterpart of a donor.
func (m *mongoDB) GetLiveClaimByListing(listingID primitive.ObjectID) (*schema.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var claim schema.Claim
	err := m.claims().FindOne(ctx, bson.M{
		"listing_id": listingID,
		"status":     bson.M{"$in": schema.LiveClaimStates},
	}, options.FindOne().SetSort(bson.M{"created_at": -1})).Decode(&claim)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	return &claim, nil
}

// ListClaimsByClaimant returns a claimant's claims newest first, with an
// optional status filter.
func (m *mongoDB) ListClaimsByClaimant(claimantID, status string, page, pageSize int64) ([]schema.Claim, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"claimant_id": claimantID}
	if status != "" {
		filter["status"] = status
	}

	total, err := m.claims().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := m.claims().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	claims := make([]schema.Claim, 0)
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, 0, err
	}

	return claims, total, nil
}

// ListClaimsByListing returns the full claim history of a listing,
// oldest first.
func (m *mongoDB) ListClaimsByListing(listingID primitive.ObjectID) ([]schema.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.claims().Find(ctx,
		bson.M{"listing_id": listingID},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		return nil, err
	}

	claims := make([]schema.Claim, 0)
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (m *mongoDB) insertClaim(claim *schema.Claim) (*schema.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.claims().InsertOne(ctx, claim)
	if err != nil {
		return nil, err
	}
	claim.ID = result.InsertedID.(primitive.ObjectID)

	return claim, nil
}

// upgradeLiveClaim turns a claimant's live claim into a completed pickup
// in place: kind claimed, status picked_up, actual pickup time stamped.
func (m *mongoDB) upgradeLiveClaim(listingID primitive.ObjectID, claimantID string, pickedUpAt time.Time) (*schema.Claim, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var claim schema.Claim
	err := m.claims().FindOneAndUpdate(ctx,
		bson.M{
			"listing_id":  listingID,
			"claimant_id": claimantID,
			"status":      bson.M{"$in": schema.LiveClaimStates},
		},
		bson.M{"$set": bson.M{
			"kind":         schema.ClaimKindClaimed,
			"status":       schema.ClaimPickedUp,
			"picked_up_at": pickedUpAt,
			"updated_at":   pickedUpAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&claim)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	return &claim, nil
}

// cancelLiveClaim sets a claimant's live claim on a listing to cancelled.
func (m *mongoDB) cancelLiveClaim(listingID primitive.ObjectID, claimantID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.claims().UpdateOne(ctx,
		bson.M{
			"listing_id":  listingID,
			"claimant_id": claimantID,
			"status":      bson.M{"$in": schema.LiveClaimStates},
		},
		bson.M{"$set": bson.M{
			"status":     schema.ClaimCancelled,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrClaimNotFound
	}

	return nil
}
