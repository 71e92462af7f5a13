package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandEnterRoom joins a room, leaving the previous one if any.
	CommandEnterRoom CommandKind = iota
	// CommandSendMessage delivers a chat message to the sender's room.
	CommandSendMessage
	// CommandActivity signals typing activity to the sender's room.
	CommandActivity
)

// Command represents an action requested by a client.
type Command struct {
	Kind CommandKind
	Name string
	Room string
	Text string
}
