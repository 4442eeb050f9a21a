package realtime

import "fmt"

// Scope is an addressing unit for real-time delivery: the global room,
// a private per-user room or a per-listing room.
type Scope string

const ScopeGlobal Scope = "global"

func UserScope(userID string) Scope {
	return Scope(fmt.Sprintf("user:%s", userID))
}

func ListingScope(listingID string) Scope {
	return Scope(fmt.Sprintf("listing:%s", listingID))
}

// event names pushed to connected clients
const (
	EventNewListing      = "new_listing"
	EventListingUpdated  = "listing_updated"
	EventListingDeleted  = "listing_deleted"
	EventStatusChanged   = "status_changed"
	EventNewMessage      = "new_message"
	EventNewNotification = "new_notification"
	EventTyping          = "typing"
	EventLocationShared  = "location_shared"

	EventJoinedUserRoom    = "joined_user_room"
	EventJoinedListingRoom = "joined_listing_room"
	EventError             = "error"
)

// Broadcaster fans out events to connected clients. Delivery is
// best-effort: per connection sends arrive in publish order, but there is
// no ordering guarantee across independent scopes.
type Broadcaster interface {
	Publish(scope Scope, event string, payload interface{})
}
