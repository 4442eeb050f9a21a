package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

func TestSendMessageAsRecipient(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	listingID := primitive.NewObjectID()
	actor := &schema.Actor{Identity: "ngo-1", Name: "Food Rescue", Role: schema.RoleNGO}
	listing := &schema.Listing{
		ID:       listingID,
		Title:    "Cooked rice",
		DonorID:  "donor-1",
		IsActive: true,
	}

	m.store.EXPECT().FindActor("ngo-1").Return(actor, nil).Times(1)
	m.store.EXPECT().GetListing(listingID).Return(listing, nil).Times(1)
	m.store.EXPECT().AppendMessage(gomock.Any()).DoAndReturn(func(msg *schema.ChatMessage) (*schema.ChatMessage, error) {
		assert.Equal(t, schema.SenderRecipient, msg.SenderRole)
		msg.ID = primitive.NewObjectID()
		return msg, nil
	}).Times(1)
	m.broadcaster.EXPECT().Publish(realtime.ListingScope(listingID.Hex()), realtime.EventNewMessage, gomock.Any()).Times(1)
	m.notifier.EXPECT().Notify("donor-1", "New message", gomock.Any(), schema.NotificationMessage, listingID.Hex()).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+listingID.Hex()+"/messages", strings.NewReader(`{"actor":"ngo-1","body":"on my way"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp schema.ChatMessage
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "on my way", jResp.Body)
}

func TestSendMessageAsDonorNotifiesClaimant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	listingID := primitive.NewObjectID()
	actor := &schema.Actor{Identity: "donor-1", Name: "Corner Bakery", Role: schema.RoleIndividual}
	listing := &schema.Listing{
		ID:       listingID,
		Title:    "Cooked rice",
		DonorID:  "donor-1",
		IsActive: true,
	}

	m.store.EXPECT().FindActor("donor-1").Return(actor, nil).Times(1)
	m.store.EXPECT().GetListing(listingID).Return(listing, nil).Times(1)
	m.store.EXPECT().AppendMessage(gomock.Any()).DoAndReturn(func(msg *schema.ChatMessage) (*schema.ChatMessage, error) {
		assert.Equal(t, schema.SenderDonor, msg.SenderRole)
		return msg, nil
	}).Times(1)
	m.broadcaster.EXPECT().Publish(gomock.Any(), realtime.EventNewMessage, gomock.Any()).Times(1)
	m.store.EXPECT().GetLiveClaimByListing(listingID).Return(&schema.Claim{
		ListingID:  listingID,
		ClaimantID: "ngo-1",
	}, nil).Times(1)
	m.notifier.EXPECT().Notify("ngo-1", "New message", gomock.Any(), schema.NotificationMessage, listingID.Hex()).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+listingID.Hex()+"/messages", strings.NewReader(`{"actor":"donor-1","body":"ready for pickup"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestSendMessageDonorWithoutClaimant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	listingID := primitive.NewObjectID()
	actor := &schema.Actor{Identity: "donor-1", Name: "Corner Bakery", Role: schema.RoleIndividual}
	listing := &schema.Listing{ID: listingID, DonorID: "donor-1", IsActive: true}

	m.store.EXPECT().FindActor("donor-1").Return(actor, nil).Times(1)
	m.store.EXPECT().GetListing(listingID).Return(listing, nil).Times(1)
	m.store.EXPECT().AppendMessage(gomock.Any()).DoAndReturn(func(msg *schema.ChatMessage) (*schema.ChatMessage, error) {
		return msg, nil
	}).Times(1)
	m.broadcaster.EXPECT().Publish(gomock.Any(), realtime.EventNewMessage, gomock.Any()).Times(1)
	// no live claim: nobody to notify
	m.store.EXPECT().GetLiveClaimByListing(listingID).Return(nil, store.ErrClaimNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+listingID.Hex()+"/messages", strings.NewReader(`{"actor":"donor-1","body":"anyone?"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestSendMessageToDeletedListing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	listingID := primitive.NewObjectID()
	actor := &schema.Actor{Identity: "ngo-1", Name: "Food Rescue", Role: schema.RoleNGO}
	listing := &schema.Listing{ID: listingID, DonorID: "donor-1", IsActive: false}

	m.store.EXPECT().FindActor("ngo-1").Return(actor, nil).Times(1)
	m.store.EXPECT().GetListing(listingID).Return(listing, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+listingID.Hex()+"/messages", strings.NewReader(`{"actor":"ngo-1","body":"hello"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), jResp.Code)
}

func TestSendMessageEmptyBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages", s.sendMessage)

	req := httptest.NewRequest("POST", "/"+primitive.NewObjectID().Hex()+"/messages", strings.NewReader(`{"actor":"ngo-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestMarkMessagesRead(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	listingID := primitive.NewObjectID()
	actor := &schema.Actor{Identity: "ngo-1", Name: "Food Rescue", Role: schema.RoleNGO}

	m.store.EXPECT().FindActor("ngo-1").Return(actor, nil).Times(1)
	m.store.EXPECT().MarkMessagesRead(listingID, "ngo-1").Return(int64(3), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:listingID/messages/read", s.markMessagesRead)

	req := httptest.NewRequest("POST", "/"+listingID.Hex()+"/messages/read", strings.NewReader(`{"actor":"ngo-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]int64
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(3), jResp["updated"])
}
