package core

// Participant is the live occupant of a room, tied to exactly one
// connection. ID equals the owning connection's id; the transport owns
// the connection lifetime, the store only mirrors it.
type Participant struct {
	ID   string
	Name string
	Room string
}
