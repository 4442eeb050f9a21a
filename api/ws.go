package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWS upgrades a connection into the realtime hub. The identity is
// resolved before the upgrade so that room joins are tied to a verified
// actor instead of a self-asserted id.
func (s *Server) serveWS(c *gin.Context) {
	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	s.hub.Attach(ws, actor.Identity)
}
