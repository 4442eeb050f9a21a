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

var ErrNotificationNotFound = fmt.Errorf("notification not found")

// NotificationStore - per-user notices. Created only by internal
// triggers, never directly by external actors.
type NotificationStore interface {
	InsertNotification(notification *schema.Notification) (*schema.Notification, error)
	ListNotifications(userID string, page, pageSize int64) ([]schema.Notification, int64, int64, error)
	MarkNotificationRead(id primitive.ObjectID, userID string) error
	MarkAllNotificationsRead(userID string) (int64, error)
}

func (m *mongoDB) notifications() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.NotificationCollection)
}

func (m *mongoDB) InsertNotification(notification *schema.Notification) (*schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	result, err := m.notifications().InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)

	return notification, nil
}

// ListNotifications returns one page of a user's notifications, newest
// first, along with the total and unread counts.
func (m *mongoDB) ListNotifications(userID string, page, pageSize int64) ([]schema.Notification, int64, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	total, err := m.notifications().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := m.notifications().CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
	if err != nil {
		return nil, 0, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := m.notifications().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, 0, err
	}

	return notifications, total, unread, nil
}

// MarkNotificationRead flips one notification to read. The user filter
// keeps a user from acknowledging someone else's notice.
func (m *mongoDB) MarkNotificationRead(id primitive.ObjectID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.notifications().UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (m *mongoDB) MarkAllNotificationsRead(userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.notifications().UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
