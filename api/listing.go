package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

// parseListingID validates the :listingID path parameter.
func parseListingID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("listingID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int64, int64) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)
	return page, pageSize
}

// listListings is the filterable paginated discovery query.
func (s *Server) listListings(c *gin.Context) {
	page, pageSize := pageParams(c)
	query := store.ListingQuery{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Priority:   c.Query("priority"),
		Location:   c.Query("location"),
		Search:     c.Query("search"),
		Vegetarian: c.Query("is_vegetarian") == "true",
		Vegan:      c.Query("is_vegan") == "true",
		GlutenFree: c.Query("is_gluten_free") == "true",
		NutFree:    c.Query("is_nut_free") == "true",
		SortBy:     c.Query("sort_by"),
		Order:      c.Query("order"),
		Page:       page,
		PageSize:   pageSize,
	}

	listings, total, err := s.store.QueryListings(query)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":  listings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// nearbyListings is the geo-radius discovery query.
func (s *Server) nearbyListings(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	radius, radErr := strconv.ParseFloat(c.Query("radius_km"), 64)
	if latErr != nil || lngErr != nil || radErr != nil || radius <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	listings, err := s.store.NearbyListings(schema.Location{
		Latitude:  lat,
		Longitude: lng,
	}, radius)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":  listings,
		"radius_km": radius,
	})
}

func (s *Server) getListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
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

	c.JSON(http.StatusOK, listing)
}

type listingParams struct {
	Actor       string              `json:"actor"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Latitude    *float64            `json:"latitude"`
	Longitude   *float64            `json:"longitude"`
	Quantity    string              `json:"quantity"`
	ExpiryInfo  string              `json:"expiry_info"`
	ExpiresAt   *time.Time          `json:"expires_at"`
	Category    string              `json:"category"`
	Dietary     *schema.DietaryInfo `json:"dietary"`
	ContactInfo string              `json:"contact_info"`
	Priority    string              `json:"priority"`
	Tags        []string            `json:"tags"`
}

func (s *Server) createListing(c *gin.Context) {
	var params listingParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Location == "" || params.Category == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	listing := &schema.Listing{
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		DonorID:     actor.Identity,
		DonorName:   actor.Name,
		DonorRole:   actor.Role,
		Quantity:    params.Quantity,
		ExpiryInfo:  params.ExpiryInfo,
		ExpiresAt:   params.ExpiresAt,
		Category:    params.Category,
		ContactInfo: params.ContactInfo,
		Priority:    params.Priority,
		Tags:        params.Tags,
	}
	if params.Dietary != nil {
		listing.Dietary = *params.Dietary
	}
	if params.Latitude != nil && params.Longitude != nil {
		listing.Geo = schema.NewPoint(schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		})
	}

	listing, err := s.store.CreateListing(listing)
	if shouldInterupt(err, c) {
		return
	}

	s.broadcaster.Publish(realtime.ScopeGlobal, realtime.EventNewListing, listing)

	c.JSON(http.StatusCreated, listing)
}

func (s *Server) updateListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var params struct {
		Actor       string              `json:"actor"`
		Title       *string             `json:"title"`
		Description *string             `json:"description"`
		Location    *string             `json:"location"`
		Latitude    *float64            `json:"latitude"`
		Longitude   *float64            `json:"longitude"`
		Quantity    *string             `json:"quantity"`
		ExpiryInfo  *string             `json:"expiry_info"`
		ExpiresAt   *time.Time          `json:"expires_at"`
		Category    *string             `json:"category"`
		Dietary     *schema.DietaryInfo `json:"dietary"`
		ContactInfo *string             `json:"contact_info"`
		Priority    *string             `json:"priority"`
		Tags        []string            `json:"tags"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	update := store.ListingUpdate{
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		Quantity:    params.Quantity,
		ExpiryInfo:  params.ExpiryInfo,
		ExpiresAt:   params.ExpiresAt,
		Category:    params.Category,
		Dietary:     params.Dietary,
		ContactInfo: params.ContactInfo,
		Priority:    params.Priority,
		Tags:        params.Tags,
	}
	if params.Latitude != nil && params.Longitude != nil {
		update.Geo = schema.NewPoint(schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		})
	}

	listing, err := s.store.UpdateListing(id, actor.Identity, update)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		case store.ErrNotListingOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotListingOwner, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.broadcaster.Publish(realtime.ScopeGlobal, realtime.EventListingUpdated, listing)

	c.JSON(http.StatusOK, listing)
}

func (s *Server) deleteListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	if err := s.store.DeleteListing(id, actor.Identity); err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		case store.ErrNotListingOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotListingOwner, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.broadcaster.Publish(realtime.ScopeGlobal, realtime.EventListingDeleted, gin.H{"listing_id": id.Hex()})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) reserveListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var params struct {
		Actor             string     `json:"actor"`
		Notes             string     `json:"notes"`
		EstimatedPickupAt *time.Time `json:"estimated_pickup_at"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	listing, claim, err := s.store.ReserveListing(id, actor, params.Notes, params.EstimatedPickupAt)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		case store.ErrListingNotAvailable:
			abortWithEncoding(c, http.StatusConflict, errorListingNotAvailable, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.broadcastStatusChange(listing)
	if actor.Identity != listing.DonorID {
		s.notifier.Notify(listing.DonorID,
			"Food reserved",
			fmt.Sprintf("%s reserved your listing \"%s\"", actor.Name, listing.Title),
			schema.NotificationFoodClaimed,
			listing.ID.Hex())
	}

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
		"claim":   claim,
	})
}

func (s *Server) claimListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var params struct {
		Actor string `json:"actor"`
		Notes string `json:"notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	actor := s.resolveActor(c, params.Actor)
	if actor == nil {
		return
	}

	listing, claim, err := s.store.ClaimListing(id, actor, params.Notes)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		case store.ErrListingAlreadyClaimed:
			abortWithEncoding(c, http.StatusConflict, errorListingAlreadyClaimed, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.broadcastStatusChange(listing)
	if actor.Identity != listing.DonorID {
		s.notifier.Notify(listing.DonorID,
			"Food claimed",
			fmt.Sprintf("%s picked up your listing \"%s\"", actor.Name, listing.Title),
			schema.NotificationFoodClaimed,
			listing.ID.Hex())
	}

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
		"claim":   claim,
	})
}

func (s *Server) unclaimListing(c *gin.Context) {
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

	listing, err := s.store.UnclaimListing(id, actor)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound, err)
		case store.ErrClaimNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorClaimNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.broadcastStatusChange(listing)
	if actor.Identity != listing.DonorID {
		s.notifier.Notify(listing.DonorID,
			"Reservation cancelled",
			fmt.Sprintf("%s cancelled the claim on your listing \"%s\"", actor.Name, listing.Title),
			schema.NotificationSystem,
			listing.ID.Hex())
	}

	c.JSON(http.StatusOK, listing)
}

func (s *Server) broadcastStatusChange(listing *schema.Listing) {
	s.broadcaster.Publish(realtime.ScopeGlobal, realtime.EventStatusChanged, gin.H{
		"listing_id": listing.ID.Hex(),
		"status":     listing.Status,
	})
}
