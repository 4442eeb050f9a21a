package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ListingCollection = "listings"

// listing lifecycle states
const (
	ListingAvailable = "available"
	ListingReserved  = "reserved"
	ListingClaimed   = "claimed"
	ListingExpired   = "expired"
)

// food categories
const (
	FoodFresh    = "fresh"
	FoodCooked   = "cooked"
	FoodPackaged = "packaged"
)

// listing priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DietaryInfo - independent dietary flags of a listing, none of them
// mutually exclusive
type DietaryInfo struct {
	Vegetarian bool `bson:"is_vegetarian" json:"is_vegetarian"`
	Vegan      bool `bson:"is_vegan" json:"is_vegan"`
	GlutenFree bool `bson:"is_gluten_free" json:"is_gluten_free"`
	NutFree    bool `bson:"is_nut_free" json:"is_nut_free"`
}

// Listing - a food donation offer
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	Geo         *GeoJSON           `bson:"geo,omitempty" json:"geo,omitempty"`
	DonorID     string             `bson:"donor_id" json:"donor_id"`
	DonorName   string             `bson:"donor_name" json:"donor_name"`
	DonorRole   string             `bson:"donor_role" json:"donor_role"`
	Quantity    string             `bson:"quantity" json:"quantity"`
	ExpiryInfo  string             `bson:"expiry_info" json:"expiry_info"`
	ExpiresAt   *time.Time         `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Dietary     DietaryInfo        `bson:"dietary" json:"dietary"`
	Status      string             `bson:"status" json:"status"`
	ContactInfo string             `bson:"contact_info" json:"contact_info"`
	Priority    string             `bson:"priority" json:"priority"`
	Tags        []string           `bson:"tags" json:"tags"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
