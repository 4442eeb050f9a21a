package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const hubLogPrefix = "realtime"

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

var log = logrus.WithField("prefix", hubLogPrefix)

// Envelope is the wire format of every pushed event.
type Envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// clientCommand is what a connected client may send upward: room joins
// and the transient typing/location signals.
type clientCommand struct {
	Action    string      `json:"action"`
	ListingID string      `json:"listing_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Hub keeps every websocket connection and its room memberships. It
// implements Broadcaster.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*connection
	rooms map[Scope]map[*connection]struct{}
}

type connection struct {
	id       string
	identity string
	hub      *Hub
	ws       *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*connection),
		rooms: make(map[Scope]map[*connection]struct{}),
	}
}

// Publish sends an event to every connection in the scope. Marshal or
// delivery failures are logged and swallowed; a slow consumer whose send
// buffer is full gets dropped rather than blocking the publisher.
func (h *Hub) Publish(scope Scope, event string, payload interface{}) {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		log.WithError(err).WithField("event", event).Error("marshal realtime event")
		return
	}

	for _, c := range h.members(scope) {
		h.deliver(c, data)
	}
}

// publishExcept is Publish minus one connection, used for the transient
// typing and location signals that must not echo back to the sender.
func (h *Hub) publishExcept(scope Scope, event string, payload interface{}, except *connection) {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		log.WithError(err).WithField("event", event).Error("marshal realtime event")
		return
	}

	for _, c := range h.members(scope) {
		if c == except {
			continue
		}
		h.deliver(c, data)
	}
}

func (h *Hub) members(scope Scope) []*connection {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if scope == ScopeGlobal {
		conns := make([]*connection, 0, len(h.conns))
		for _, c := range h.conns {
			conns = append(conns, c)
		}
		return conns
	}

	room := h.rooms[scope]
	conns := make([]*connection, 0, len(room))
	for c := range room {
		conns = append(conns, c)
	}
	return conns
}

func (h *Hub) deliver(c *connection, data []byte) {
	select {
	case c.send <- data:
	default:
		log.WithField("identity", c.identity).Warn("dropping slow realtime consumer")
		h.detach(c)
	}
}

// Attach registers an upgraded websocket connection for an already
// resolved identity and starts its pumps. Joining rooms stays
// client-driven, but a connection may only ever join its own user room.
func (h *Hub) Attach(ws *websocket.Conn, identity string) {
	c := h.register(identity)
	c.ws = ws

	go c.writePump()
	go c.readPump()
}

func (h *Hub) register(identity string) *connection {
	c := &connection{
		id:       uuid.New().String(),
		identity: identity,
		hub:      h,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()

	log.WithField("identity", identity).Info("realtime connection registered")
	return c
}

func (h *Hub) detach(c *connection) {
	h.mu.Lock()
	if _, ok := h.conns[c.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, c.id)
	for scope, room := range h.rooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, scope)
		}
	}
	h.mu.Unlock()

	// c.send stays open so concurrent publishers never hit a closed
	// channel; the write pump stops through done instead.
	c.once.Do(func() { close(c.done) })
	log.WithField("identity", c.identity).Info("realtime connection unregistered")
}

func (h *Hub) join(c *connection, scope Scope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[c.id]; !ok {
		return
	}
	room, ok := h.rooms[scope]
	if !ok {
		room = make(map[*connection]struct{})
		h.rooms[scope] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(c *connection, scope Scope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[scope]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, scope)
		}
	}
}

// handleCommand dispatches one upward client message.
func (h *Hub) handleCommand(c *connection, cmd clientCommand) {
	switch cmd.Action {
	case "join_user_room":
		// gated: a connection joins the room of its own verified
		// identity only
		h.join(c, UserScope(c.identity))
		h.sendEvent(c, EventJoinedUserRoom, map[string]string{"user_id": c.identity})

	case "join_listing_room":
		if cmd.ListingID == "" {
			h.sendEvent(c, EventError, map[string]string{"message": "listing_id is required"})
			return
		}
		h.join(c, ListingScope(cmd.ListingID))
		h.sendEvent(c, EventJoinedListingRoom, map[string]string{"listing_id": cmd.ListingID})

	case "leave_listing_room":
		if cmd.ListingID != "" {
			h.leave(c, ListingScope(cmd.ListingID))
		}

	case "typing":
		if cmd.ListingID == "" {
			return
		}
		h.publishExcept(ListingScope(cmd.ListingID), EventTyping, map[string]interface{}{
			"listing_id": cmd.ListingID,
			"user_id":    c.identity,
			"payload":    cmd.Payload,
		}, c)

	case "share_location":
		if cmd.ListingID == "" {
			return
		}
		h.publishExcept(ListingScope(cmd.ListingID), EventLocationShared, map[string]interface{}{
			"listing_id": cmd.ListingID,
			"user_id":    c.identity,
			"payload":    cmd.Payload,
		}, c)

	default:
		h.sendEvent(c, EventError, map[string]string{"message": "unknown action"})
	}
}

func (h *Hub) sendEvent(c *connection, event string, payload interface{}) {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		log.WithError(err).Error("marshal realtime event")
		return
	}
	h.deliver(c, data)
}

func (c *connection) readPump() {
	defer func() {
		c.hub.detach(c)
		_ = c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("identity", c.identity).Warn("realtime read failed")
			}
			return
		}

		var cmd clientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.hub.sendEvent(c, EventError, map[string]string{"message": "cannot parse message"})
			continue
		}
		c.hub.handleCommand(c, cmd)
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.hub.detach(c)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.detach(c)
				return
			}
		}
	}
}
