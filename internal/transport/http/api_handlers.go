package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/chatrelay-server/internal/core"
)

// APIHandlers serves read-only snapshots of the live membership state.
type APIHandlers struct {
	store *core.Store
	log   *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(store *core.Store, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{store: store, log: logger}
}

// RoomsResponse lists the rooms with at least one participant.
type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// RosterEntry is one participant in a room roster.
type RosterEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RosterResponse is the current roster of one room.
type RosterResponse struct {
	Room  string        `json:"room"`
	Users []RosterEntry `json:"users"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Rooms handles GET /api/rooms.
func (h *APIHandlers) Rooms(c *gin.Context) {
	c.JSON(http.StatusOK, RoomsResponse{Rooms: h.store.ActiveRooms()})
}

// RoomUsers handles GET /api/rooms/:room/users.
func (h *APIHandlers) RoomUsers(c *gin.Context) {
	room := c.Param("room")
	roster := h.store.RoomRoster(room)
	if len(roster) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}

	users := make([]RosterEntry, 0, len(roster))
	for _, p := range roster {
		users = append(users, RosterEntry{ID: p.ID, Name: p.Name})
	}
	c.JSON(http.StatusOK, RosterResponse{Room: room, Users: users})
}
