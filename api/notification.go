package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/foodbridge-inc/foodbridge-api/store"
)

func (s *Server) listNotifications(c *gin.Context) {
	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	page, pageSize := pageParams(c)
	notifications, total, unread, err := s.store.ListNotifications(actor.Identity, page, pageSize)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         total,
		"unread_count":  unread,
		"page":          page,
		"page_size":     pageSize,
	})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("notificationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	if err := s.store.MarkNotificationRead(id, actor.Identity); err != nil {
		if err == store.ErrNotificationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorNotificationNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
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

	updated, err := s.store.MarkAllNotificationsRead(actor.Identity)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
