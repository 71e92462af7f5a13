package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventChatMessage carries a chat or system message.
	EventChatMessage EventKind = iota
	// EventUserList carries the current roster of a room.
	EventUserList
	// EventRoomList carries the active room names.
	EventRoomList
	// EventActivity carries a typing hint from another participant.
	EventActivity
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Message Message
	Users   []Participant
	Rooms   []string
	User    string
}
