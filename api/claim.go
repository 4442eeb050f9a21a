package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodbridge-inc/foodbridge-api/store"
)

// myClaims lists the claims of the requesting actor, newest first.
func (s *Server) myClaims(c *gin.Context) {
	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	page, pageSize := pageParams(c)
	claims, total, err := s.store.ListClaimsByClaimant(actor.Identity, c.Query("status"), page, pageSize)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claims":    claims,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// myDonations lists the requesting actor's own listings.
func (s *Server) myDonations(c *gin.Context) {
	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	page, pageSize := pageParams(c)
	listings, total, err := s.store.ListDonations(actor.Identity, page, pageSize)
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

// listListingClaims returns the claim history of one listing.
func (s *Server) listListingClaims(c *gin.Context) {
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

	claims, err := s.store.ListClaimsByListing(id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims})
}
