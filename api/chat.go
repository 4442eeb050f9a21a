package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

// listMessages returns one page of a listing's chat log, chronological
// ascending.
func (s *Server) listMessages(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	if _, err := s.store.GetListing(id); err != nil {
		if err == store.ErrListingNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	page, pageSize := pageParams(c)
	messages, total, err := s.store.ListMessages(id, page, pageSize)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":  messages,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// sendMessage appends to the listing's chat log. The sender role is
// derived, never asserted: the listing's donor is "donor", everyone else
// is "recipient".
func (s *Server) sendMessage(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var params struct {
		Actor string `json:"actor"`
		Body  string `json:"body"`
		Kind  string `json:"kind"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Body == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	listing, err := s.store.GetListing(id)
	if err != nil {
		if err == store.ErrListingNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}
	if !listing.IsActive {
		abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		return
	}

	role := schema.SenderRecipient
	if actor.Identity == listing.DonorID {
		role = schema.SenderDonor
	}

	message := &schema.ChatMessage{
		ListingID:  id,
		SenderID:   actor.Identity,
		SenderName: actor.Name,
		SenderRole: role,
		Body:       params.Body,
		Kind:       params.Kind,
	}
	message, err = s.store.AppendMessage(message)
	if shouldInterupt(err, c) {
		return
	}

	s.broadcaster.Publish(realtime.ListingScope(id.Hex()), realtime.EventNewMessage, message)
	s.notifyCounterpart(listing, actor, role)

	c.JSON(http.StatusCreated, message)
}

// notifyCounterpart tells the other side of the conversation: the current
// live claimant when the donor writes (looked up freshly, may be none),
// the donor when a recipient writes.
func (s *Server) notifyCounterpart(listing *schema.Listing, actor *schema.Actor, role string) {
	body := fmt.Sprintf("%s sent a message about \"%s\"", actor.Name, listing.Title)

	if role == schema.SenderDonor {
		claim, err := s.store.GetLiveClaimByListing(listing.ID)
		if err != nil {
			// no live claimant to tell
			return
		}
		s.notifier.Notify(claim.ClaimantID, "New message", body, schema.NotificationMessage, listing.ID.Hex())
		return
	}

	s.notifier.Notify(listing.DonorID, "New message", body, schema.NotificationMessage, listing.ID.Hex())
}

// markMessagesRead flips every message in the listing not sent by the
// actor to read. Idempotent.
func (s *Server) markMessagesRead(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var params struct {
		Actor string `json:"actor"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	updated, err := s.store.MarkMessagesRead(id, actor.Identity)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
