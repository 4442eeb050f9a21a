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

var (
	ErrListingNotFound       = fmt.Errorf("listing not found")
	ErrListingNotAvailable   = fmt.Errorf("listing is not available")
	ErrListingAlreadyClaimed = fmt.Errorf("listing has already been claimed")
	ErrNotListingOwner       = fmt.Errorf("only the donor of a listing may modify it")
)

// ListingQuery - discovery query parameters for listings
type ListingQuery struct {
	Status     string
	Category   string
	Priority   string
	Location   string
	Search     string
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	NutFree    bool
	SortBy     string
	Order      string
	Page       int64
	PageSize   int64
}

// ListingUpdate - donor-editable listing fields. Nil pointers are left
// untouched.
type ListingUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Geo         *schema.GeoJSON
	Quantity    *string
	ExpiryInfo  *string
	ExpiresAt   *time.Time
	Category    *string
	Dietary     *schema.DietaryInfo
	ContactInfo *string
	Priority    *string
	Tags        []string
}

// ListingStore - listing lifecycle and discovery operations.
//
// Status transitions are last-write-wins: every mutation is an
// independent read-modify-write with no transaction or version token, so
// two concurrent claims on the same available listing can both pass the
// status check. The listing record keeps the last written status and the
// claim ledger keeps both entries.
type ListingStore interface {
	CreateListing(listing *schema.Listing) (*schema.Listing, error)
	GetListing(id primitive.ObjectID) (*schema.Listing, error)
	QueryListings(query ListingQuery) ([]schema.Listing, int64, error)
	NearbyListings(center schema.Location, radiusKM float64) ([]schema.Listing, error)
	UpdateListing(id primitive.ObjectID, donorID string, update ListingUpdate) (*schema.Listing, error)
	DeleteListing(id primitive.ObjectID, donorID string) error
	ReserveListing(id primitive.ObjectID, actor *schema.Actor, notes string, estimatedPickupAt *time.Time) (*schema.Listing, *schema.Claim, error)
	ClaimListing(id primitive.ObjectID, actor *schema.Actor, notes string) (*schema.Listing, *schema.Claim, error)
	UnclaimListing(id primitive.ObjectID, actor *schema.Actor) (*schema.Listing, error)
	ListDonations(donorID string, page, pageSize int64) ([]schema.Listing, int64, error)
}

func (m *mongoDB) listings() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ListingCollection)
}

// CreateListing inserts a new listing. A new listing always starts in the
// available state regardless of what the caller filled in.
func (m *mongoDB) CreateListing(listing *schema.Listing) (*schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	listing.Status = schema.ListingAvailable
	listing.IsActive = true
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Priority == "" {
		listing.Priority = schema.PriorityMedium
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}

	result, err := m.listings().InsertOne(ctx, listing)
	if err != nil {
		return nil, err
	}
	listing.ID = result.InsertedID.(primitive.ObjectID)

	return listing, nil
}

// GetListing returns a listing by id, soft-deleted ones included. Callers
// mutating the listing must check IsActive themselves.
func (m *mongoDB) GetListing(id primitive.ObjectID) (*schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var listing schema.Listing
	if err := m.listings().FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return &listing, nil
}

// QueryListings runs the filterable discovery query. Soft-deleted
// listings never show up here.
func (m *mongoDB) QueryListings(query ListingQuery) ([]schema.Listing, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"is_active": true}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Priority != "" {
		filter["priority"] = query.Priority
	}
	if query.Location != "" {
		filter["location"] = bson.M{"$regex": query.Location, "$options": "i"}
	}
	if query.Vegetarian {
		filter["dietary.is_vegetarian"] = true
	}
	if query.Vegan {
		filter["dietary.is_vegan"] = true
	}
	if query.GlutenFree {
		filter["dietary.is_gluten_free"] = true
	}
	if query.NutFree {
		filter["dietary.is_nut_free"] = true
	}
	if query.Search != "" {
		pattern := bson.M{"$regex": query.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"donor_name": pattern},
			bson.M{"tags": pattern},
		}
	}

	total, err := m.listings().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := -1 // newest first by default
	if query.Order == "asc" {
		order = 1
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)
	opts := options.Find().
		SetSort(bson.M{sortBy: order}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := m.listings().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	listings := make([]schema.Listing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// NearbyListings returns active listings whose coordinates fall within
// the spherical cap of radiusKM kilometers around the given center.
func (m *mongoDB) NearbyListings(center schema.Location, radiusKM float64) ([]schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"is_active": true,
		"geo": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{center.Longitude, center.Latitude},
					radiusKM / earthRadiusKM,
				},
			},
		},
	}

	cursor, err := m.listings().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	listings := make([]schema.Listing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	return listings, nil
}

// UpdateListing edits listing fields without a status change. Only the
// owning donor may edit.
func (m *mongoDB) UpdateListing(id primitive.ObjectID, donorID string, update ListingUpdate) (*schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	listing, err := m.GetListing(id)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, ErrListingNotFound
	}
	if listing.DonorID != donorID {
		return nil, ErrNotListingOwner
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Geo != nil {
		set["geo"] = update.Geo
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.ExpiryInfo != nil {
		set["expiry_info"] = *update.ExpiryInfo
	}
	if update.ExpiresAt != nil {
		set["expires_at"] = *update.ExpiresAt
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Dietary != nil {
		set["dietary"] = *update.Dietary
	}
	if update.ContactInfo != nil {
		set["contact_info"] = *update.ContactInfo
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}

	var updated schema.Listing
	err = m.listings().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteListing soft-deletes a listing. The record stays retrievable by
// id but disappears from every discovery query. Terminal: no further
// transitions apply.
func (m *mongoDB) DeleteListing(id primitive.ObjectID, donorID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	listing, err := m.GetListing(id)
	if err != nil {
		return err
	}
	if !listing.IsActive {
		return ErrListingNotFound
	}
	if listing.DonorID != donorID {
		return ErrNotListingOwner
	}

	_, err = m.listings().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	return err
}

// ReserveListing transitions available → reserved and opens a pending
// claim of kind reserved for the actor.
func (m *mongoDB) ReserveListing(id primitive.ObjectID, actor *schema.Actor, notes string, estimatedPickupAt *time.Time) (*schema.Listing, *schema.Claim, error) {
	listing, err := m.GetListing(id)
	if err != nil {
		return nil, nil, err
	}
	if !listing.IsActive {
		return nil, nil, ErrListingNotFound
	}
	if listing.Status != schema.ListingAvailable {
		return nil, nil, ErrListingNotAvailable
	}

	now := time.Now().UTC()
	claim := &schema.Claim{
		ListingID:         id,
		ClaimantID:        actor.Identity,
		ClaimantName:      actor.Name,
		ClaimantRole:      actor.Role,
		Kind:              schema.ClaimKindReserved,
		Status:            schema.ClaimPending,
		Notes:             notes,
		EstimatedPickupAt: estimatedPickupAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	claim, err = m.insertClaim(claim)
	if err != nil {
		return nil, nil, err
	}

	listing, err = m.setListingStatus(id, schema.ListingReserved)
	if err != nil {
		return nil, nil, err
	}

	return listing, claim, nil
}

// ClaimListing transitions a listing to claimed. A listing can be claimed
// directly from available, skipping reservation; only an already claimed
// listing rejects. When the actor holds a live claim on the listing it is
// upgraded in place instead of creating a duplicate entry.
func (m *mongoDB) ClaimListing(id primitive.ObjectID, actor *schema.Actor, notes string) (*schema.Listing, *schema.Claim, error) {
	listing, err := m.GetListing(id)
	if err != nil {
		return nil, nil, err
	}
	if !listing.IsActive {
		return nil, nil, ErrListingNotFound
	}
	if listing.Status == schema.ListingClaimed {
		return nil, nil, ErrListingAlreadyClaimed
	}

	now := time.Now().UTC()
	claim, err := m.upgradeLiveClaim(id, actor.Identity, now)
	if err == ErrClaimNotFound {
		claim = &schema.Claim{
			ListingID:    id,
			ClaimantID:   actor.Identity,
			ClaimantName: actor.Name,
			ClaimantRole: actor.Role,
			Kind:         schema.ClaimKindClaimed,
			Status:       schema.ClaimPickedUp,
			Notes:        notes,
			PickedUpAt:   &now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		claim, err = m.insertClaim(claim)
	}
	if err != nil {
		return nil, nil, err
	}

	listing, err = m.setListingStatus(id, schema.ListingClaimed)
	if err != nil {
		return nil, nil, err
	}

	return listing, claim, nil
}

// UnclaimListing cancels the actor's live claim and reverts the listing
// to available. Without a live claim owned by the actor it fails and the
// listing status is untouched.
func (m *mongoDB) UnclaimListing(id primitive.ObjectID, actor *schema.Actor) (*schema.Listing, error) {
	listing, err := m.GetListing(id)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, ErrListingNotFound
	}

	if err := m.cancelLiveClaim(id, actor.Identity); err != nil {
		return nil, err
	}

	return m.setListingStatus(id, schema.ListingAvailable)
}

// ListDonations returns the donor's own listings, newest first,
// soft-deleted ones included so the donation history stays complete.
func (m *mongoDB) ListDonations(donorID string, page, pageSize int64) ([]schema.Listing, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"donor_id": donorID}
	total, err := m.listings().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := m.listings().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	listings := make([]schema.Listing, 0)
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (m *mongoDB) setListingStatus(id primitive.ObjectID, status string) (*schema.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var updated schema.Listing
	err := m.listings().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return &updated, nil
}

const defaultPageSize = 20

func normalizePage(page, pageSize int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
