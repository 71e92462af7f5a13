package core

import (
	"sort"
	"sync"
)

// Store is the process-wide membership state: connection id -> participant.
// The hub goroutine is the only writer; REST handlers read concurrently,
// hence the RWMutex. Reads always reflect the latest completed mutation.
type Store struct {
	mu           sync.RWMutex
	participants map[string]Participant
}

// NewStore constructs an empty membership store.
func NewStore() *Store {
	return &Store{participants: make(map[string]Participant)}
}

// Upsert inserts or replaces the participant for a connection id and
// returns the resulting participant. It never fails.
func (s *Store) Upsert(id, name, room string) Participant {
	p := Participant{ID: id, Name: name, Room: room}

	s.mu.Lock()
	s.participants[id] = p
	s.mu.Unlock()

	return p
}

// Remove deletes the participant for id. No-op if absent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	delete(s.participants, id)
	s.mu.Unlock()
}

// Lookup returns the participant for id, if any.
func (s *Store) Lookup(id string) (Participant, bool) {
	s.mu.RLock()
	p, ok := s.participants[id]
	s.mu.RUnlock()
	return p, ok
}

// RoomRoster returns all participants currently in room, sorted by name
// for stable wire output. Empty slice if the room has no occupants.
func (s *Store) RoomRoster(room string) []Participant {
	s.mu.RLock()
	roster := make([]Participant, 0)
	for _, p := range s.participants {
		if p.Room == room {
			roster = append(roster, p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })
	return roster
}

// ActiveRooms returns the distinct room names with at least one
// participant, sorted. Each name appears exactly once.
func (s *Store) ActiveRooms() []string {
	s.mu.RLock()
	seen := make(map[string]struct{})
	for _, p := range s.participants {
		seen[p.Room] = struct{}{}
	}
	s.mu.RUnlock()

	rooms := make([]string, 0, len(seen))
	for room := range seen {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}
