package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationCollection = "notifications"

// notification types
const (
	NotificationNewFood     = "new_food"
	NotificationFoodClaimed = "food_claimed"
	NotificationFoodExpired = "food_expired"
	NotificationMessage     = "message"
	NotificationSystem      = "system"
)

// Notification - a per-user notice created by internal triggers only
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Type      string             `bson:"type" json:"type"`
	RelatedID string             `bson:"related_id,omitempty" json:"related_id,omitempty"`
	Read      bool               `bson:"read" json:"read"`
	Priority  string             `bson:"priority" json:"priority"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
