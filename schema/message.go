package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MessageCollection = "messages"

// sender roles relative to a listing
const (
	SenderDonor     = "donor"
	SenderRecipient = "recipient"
)

// message kinds
const (
	MessageText     = "text"
	MessageImage    = "image"
	MessageLocation = "location"
)

// ChatMessage - one entry of a per-listing chat log, ordered by creation
// time ascending
type ChatMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID  primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	SenderID   string             `bson:"sender_id" json:"sender_id"`
	SenderName string             `bson:"sender_name" json:"sender_name"`
	SenderRole string             `bson:"sender_role" json:"sender_role"`
	Body       string             `bson:"body" json:"body"`
	Kind       string             `bson:"kind" json:"kind"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
