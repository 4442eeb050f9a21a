package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var statsPeriods = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// listingStats returns aggregate statistics over a time window of 7, 30
// or 90 days, default 30, optionally filtered down to one donor.
func (s *Server) listingStats(c *gin.Context) {
	period := c.DefaultQuery("period", "30d")
	days, ok := statsPeriods[period]
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	stats, err := s.store.ListingStats(since, c.Query("donor"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period": period,
		"since":  since,
		"stats":  stats,
	})
}
