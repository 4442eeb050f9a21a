package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

// ChatStore - per-listing message log
type ChatStore interface {
	AppendMessage(message *schema.ChatMessage) (*schema.ChatMessage, error)
	ListMessages(listingID primitive.ObjectID, page, pageSize int64) ([]schema.ChatMessage, int64, error)
	MarkMessagesRead(listingID primitive.ObjectID, readerID string) (int64, error)
}

func (m *mongoDB) messages() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.MessageCollection)
}

func (m *mongoDB) AppendMessage(message *schema.ChatMessage) (*schema.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	if message.Kind == "" {
		message.Kind = schema.MessageText
	}

	result, err := m.messages().InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = result.InsertedID.(primitive.ObjectID)

	return message, nil
}

// ListMessages returns one page of a listing's chat log in chronological
// ascending order.
func (m *mongoDB) ListMessages(listingID primitive.ObjectID, page, pageSize int64) ([]schema.ChatMessage, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"listing_id": listingID}
	total, err := m.messages().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	opts := options.Find().
		SetSort(bson.M{"created_at": 1}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := m.messages().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	messages := make([]schema.ChatMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkMessagesRead flips every message in the listing not sent by the
// reader to read. Bulk and idempotent; there is no per-message
// acknowledgment.
func (m *mongoDB) MarkMessagesRead(listingID primitive.ObjectID, readerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.messages().UpdateMany(ctx,
		bson.M{
			"listing_id": listingID,
			"sender_id":  bson.M{"$ne": readerID},
			"read":       false,
		},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
