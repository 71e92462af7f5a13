package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/chatrelay-server/internal/metrics"
)

// DefaultSystemName is the reserved sender identity for server-authored
// messages. It is never assigned to a real participant.
const DefaultSystemName = "Admin"

// Hub owns all room and subscription state. Every mutation runs on the
// Run goroutine, so the read-mutate-read sequences required by the
// protocol are atomic without further locking. Clients reach the hub
// through channels only.
type Hub struct {
	store      *Store
	metrics    *metrics.Metrics
	log        *zerolog.Logger
	systemName string

	register   chan *Client
	unregister chan *Client
	inbound    chan submission

	// Owned by the Run goroutine.
	clients map[string]*Client
	rooms   map[string]*room
}

type submission struct {
	client *Client
	cmd    *Command
}

// NewHub constructs a hub around the given membership store. Metrics and
// logger may be nil.
func NewHub(store *Store, m *metrics.Metrics, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		store:      store,
		metrics:    m,
		log:        logger,
		systemName: DefaultSystemName,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan submission, 64),
		clients:    make(map[string]*Client),
		rooms:      make(map[string]*room),
	}
}

// SetSystemName overrides the reserved system identity. Must be called
// before Run.
func (h *Hub) SetSystemName(name string) {
	if name != "" {
		h.systemName = name
	}
}

// SystemName returns the reserved system identity.
func (h *Hub) SystemName() string {
	return h.systemName
}

// RegisterClient announces a new connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient runs the disconnect flow for a connection. The caller
// must close c.Commands afterwards to stop the command pump.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes registrations and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleConnect(c)
			go h.pump(ctx, c)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case s := <-h.inbound:
			h.handleCommand(s.client, s.cmd)
		}
	}
}

// pump forwards one client's commands into the hub's inbound channel so
// the Run goroutine stays the single consumer of all state changes.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			select {
			case h.inbound <- submission{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (h *Hub) handleConnect(c *Client) {
	h.clients[c.ID] = c
	if h.metrics != nil {
		h.metrics.ConnectionsOpen.Inc()
	}
	h.log.Debug().Str("client_id", c.ID).Msg("client connected")

	// Welcome goes to the new connection only.
	h.deliver(c, h.systemMessage("Welcome to Chat App"))
}

func (h *Hub) handleDisconnect(c *Client) {
	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	if h.metrics != nil {
		h.metrics.ConnectionsOpen.Dec()
	}

	p, joined := h.store.Lookup(c.ID)
	h.store.Remove(c.ID)

	// A connection that never entered a room leaves no trace.
	if !joined {
		h.log.Debug().Str("client_id", c.ID).Msg("client disconnected before joining")
		return
	}

	if r, ok := h.rooms[p.Room]; ok {
		r.remove(c)
		h.broadcastRoom(r, h.systemMessage(fmt.Sprintf("%s has left the room", p.Name)))
		h.broadcastRoom(r, &Event{Kind: EventUserList, Users: h.store.RoomRoster(p.Room)})
		if r.empty() {
			delete(h.rooms, p.Room)
		}
	}
	h.broadcastAll(&Event{Kind: EventRoomList, Rooms: h.store.ActiveRooms()})

	h.log.Debug().
		Str("client_id", c.ID).
		Str("name", p.Name).
		Str("room", p.Room).
		Msg("client disconnected")
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	// The disconnect flow may already have run for this connection while
	// the command was queued.
	if _, ok := h.clients[c.ID]; !ok {
		return
	}

	switch cmd.Kind {
	case CommandEnterRoom:
		h.handleEnterRoom(c, cmd)
	case CommandSendMessage:
		h.handleMessage(c, cmd)
	case CommandActivity:
		h.handleActivity(c, cmd)
	}
}

// handleEnterRoom runs the join/switch flow. The leave announcement for
// the previous room is computed from pre-mutation state; every later send
// uses post-mutation state so rosters never show the departing client.
func (h *Hub) handleEnterRoom(c *Client, cmd *Command) {
	if cmd.Name == "" || cmd.Room == "" {
		return
	}

	prev, hadPrev := h.store.Lookup(c.ID)
	if hadPrev {
		if r, ok := h.rooms[prev.Room]; ok {
			r.remove(c)
			h.broadcastRoom(r, h.systemMessage(fmt.Sprintf("%s has left the room", cmd.Name)))
		}
	}

	user := h.store.Upsert(c.ID, cmd.Name, cmd.Room)

	if hadPrev {
		if r, ok := h.rooms[prev.Room]; ok {
			h.broadcastRoom(r, &Event{Kind: EventUserList, Users: h.store.RoomRoster(prev.Room)})
			if r.empty() {
				delete(h.rooms, prev.Room)
			}
		}
	}

	r, ok := h.rooms[user.Room]
	if !ok {
		r = newRoom(user.Room)
		h.rooms[user.Room] = r
	}
	r.add(c)

	h.deliver(c, h.systemMessage(fmt.Sprintf("You have joined the %s room", user.Room)))
	h.broadcastRoom(r, h.systemMessage(fmt.Sprintf("%s has joined the room", user.Name)), c.ID)
	h.broadcastRoom(r, &Event{Kind: EventUserList, Users: h.store.RoomRoster(user.Room)})
	h.broadcastAll(&Event{Kind: EventRoomList, Rooms: h.store.ActiveRooms()})

	h.log.Debug().
		Str("client_id", c.ID).
		Str("name", user.Name).
		Str("room", user.Room).
		Msg("client entered room")
}

func (h *Hub) handleMessage(c *Client, cmd *Command) {
	p, ok := h.store.Lookup(c.ID)
	if !ok {
		// Sender never joined or already disconnected.
		return
	}
	r, ok := h.rooms[p.Room]
	if !ok {
		return
	}

	h.broadcastRoom(r, &Event{
		Kind:    EventChatMessage,
		Message: buildMessage(cmd.Name, cmd.Text, time.Now()),
	})
	if h.metrics != nil {
		h.metrics.MessagesRelayed.Inc()
	}
}

func (h *Hub) handleActivity(c *Client, cmd *Command) {
	p, ok := h.store.Lookup(c.ID)
	if !ok {
		return
	}
	r, ok := h.rooms[p.Room]
	if !ok {
		return
	}

	h.broadcastRoom(r, &Event{Kind: EventActivity, User: cmd.Name}, c.ID)
}

func (h *Hub) systemMessage(text string) *Event {
	return &Event{
		Kind:    EventChatMessage,
		Message: buildMessage(h.systemName, text, time.Now()),
	}
}

// deliver sends an event to a single client without blocking.
func (h *Hub) deliver(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		h.countDrop(1)
	}
}

func (h *Hub) broadcastRoom(r *room, ev *Event, skip ...string) {
	h.countDrop(r.broadcast(ev, skip...))
}

// broadcastAll reaches every connected client regardless of room.
func (h *Hub) broadcastAll(ev *Event) {
	dropped := 0
	for _, client := range h.clients {
		select {
		case client.Events <- ev:
		default:
			dropped++
		}
	}
	h.countDrop(dropped)
}

func (h *Hub) countDrop(n int) {
	if n > 0 && h.metrics != nil {
		h.metrics.EventsDropped.Add(float64(n))
	}
}
