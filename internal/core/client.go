package core

// Client is one live connection as seen by the core layer. The transport
// pushes commands in and drains events out; the hub never blocks on a
// client's Events channel.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
	}
}
