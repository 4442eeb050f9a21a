package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ClaimCollection = "claims"

// claim kinds
const (
	ClaimKindReserved = "reserved"
	ClaimKindClaimed  = "claimed"
)

// claim states
const (
	ClaimPending   = "pending"
	ClaimConfirmed = "confirmed"
	ClaimPickedUp  = "picked_up"
	ClaimCancelled = "cancelled"
)

// LiveClaimStates are the states in which a claim still holds a listing.
// A claim outside of these states is history only.
var LiveClaimStates = []string{ClaimPending, ClaimConfirmed}

// Claim - a reservation or pickup record linking a claimant to a listing
type Claim struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID         primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	ClaimantID        string             `bson:"claimant_id" json:"claimant_id"`
	ClaimantName      string             `bson:"claimant_name" json:"claimant_name"`
	ClaimantRole      string             `bson:"claimant_role" json:"claimant_role"`
	Kind              string             `bson:"kind" json:"kind"`
	EstimatedPickupAt *time.Time         `bson:"estimated_pickup_at,omitempty" json:"estimated_pickup_at,omitempty"`
	PickedUpAt        *time.Time         `bson:"picked_up_at,omitempty" json:"picked_up_at,omitempty"`
	Notes             string             `bson:"notes" json:"notes"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
