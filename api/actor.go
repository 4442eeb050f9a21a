package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

// resolveActor stamps a request with a verified display name and role.
// A request whose identity does not resolve is aborted before any
// mutation; the caller must stop when nil is returned.
func (s *Server) resolveActor(c *gin.Context, identity string) *schema.Actor {
	if identity == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return nil
	}

	actor, err := s.store.FindActor(identity)
	if err != nil {
		if err == store.ErrActorNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorActorNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil
	}

	return actor
}
