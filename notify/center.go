package notify

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

var log = logrus.WithField("prefix", "notify")

// Notifier tells a user about a state change. Fire-and-forget: it is a
// best-effort side effect of an already-committed mutation and must never
// fail the triggering request.
type Notifier interface {
	Notify(userID, title, body, notificationType, relatedID string)
}

// Center persists a notification and pushes it to the target's private
// realtime channel.
type Center struct {
	store       store.NotificationStore
	broadcaster realtime.Broadcaster
}

func NewCenter(store store.NotificationStore, broadcaster realtime.Broadcaster) *Center {
	return &Center{
		store:       store,
		broadcaster: broadcaster,
	}
}

// Notify persists the record, then publishes it to the user's room.
// Failures on either step are logged and swallowed; there are no retries.
func (c *Center) Notify(userID, title, body, notificationType, relatedID string) {
	notification := &schema.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		Type:      notificationType,
		RelatedID: relatedID,
		Priority:  priorityFor(notificationType),
		CreatedAt: time.Now().UTC(),
	}

	saved, err := c.store.InsertNotification(notification)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"type":    notificationType,
		}).Error("persist notification")
		return
	}

	c.broadcaster.Publish(realtime.UserScope(userID), realtime.EventNewNotification, saved)
}

func priorityFor(notificationType string) string {
	switch notificationType {
	case schema.NotificationFoodExpired:
		return schema.PriorityHigh
	default:
		return schema.PriorityMedium
	}
}
