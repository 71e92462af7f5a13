package core

// room groups the clients subscribed to one broadcast channel. Owned by
// the hub goroutine only; no locking needed.
type room struct {
	name    string
	clients map[string]*Client
}

func newRoom(name string) *room {
	return &room{
		name:    name,
		clients: make(map[string]*Client),
	}
}

func (r *room) add(c *Client) {
	r.clients[c.ID] = c
}

func (r *room) remove(c *Client) {
	delete(r.clients, c.ID)
}

func (r *room) empty() bool {
	return len(r.clients) == 0
}

// broadcast sends an event to every client in the room except the ids in
// skip. The send is non-blocking: a slow consumer drops the event rather
// than stalling the hub. Returns the number of dropped sends.
func (r *room) broadcast(event *Event, skip ...string) int {
	dropped := 0
	for id, client := range r.clients {
		if contains(skip, id) {
			continue
		}
		select {
		case client.Events <- event:
		default:
			dropped++
		}
	}
	return dropped
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
