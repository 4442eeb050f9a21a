package background

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/schema"
)

const TaskExpireListings = "expire_listings"

// ExpireListings is a background job that flips overdue listings to
// expired, tells each donor and broadcasts the status changes.
func (m *BackgroundManager) ExpireListings() error {
	expired, err := m.store.ExpireListings(time.Now().UTC())
	if err != nil {
		return err
	}

	for i := range expired {
		listing := &expired[i]

		m.broadcaster.Publish(realtime.ScopeGlobal, realtime.EventStatusChanged, map[string]interface{}{
			"listing_id": listing.ID.Hex(),
			"status":     listing.Status,
		})
		m.notifier.Notify(listing.DonorID,
			"Listing expired",
			fmt.Sprintf("Your listing \"%s\" has passed its expiry time", listing.Title),
			schema.NotificationFoodExpired,
			listing.ID.Hex())
	}

	if len(expired) > 0 {
		log.WithField("prefix", "background").Infof("expired %d listings", len(expired))
	}

	return nil
}
