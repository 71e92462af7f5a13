package core

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreUpsertReplacesSameID(t *testing.T) {
	s := NewStore()

	s.Upsert("c1", "alice", "lobby")
	s.Upsert("c1", "alicia", "den")

	p, ok := s.Lookup("c1")
	if !ok {
		t.Fatal("participant not found after upsert")
	}
	if p.Name != "alicia" || p.Room != "den" {
		t.Fatalf("unexpected participant after re-upsert: %+v", p)
	}

	if got := len(s.RoomRoster("lobby")); got != 0 {
		t.Fatalf("old room still has %d participants", got)
	}
	if got := len(s.RoomRoster("den")); got != 1 {
		t.Fatalf("new room has %d participants, want 1", got)
	}
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	s := NewStore()

	s.Upsert("c1", "alice", "lobby")
	s.Remove("c1")
	s.Remove("c1")

	if _, ok := s.Lookup("c1"); ok {
		t.Fatal("participant still present after remove")
	}
	if rooms := s.ActiveRooms(); len(rooms) != 0 {
		t.Fatalf("active rooms not empty: %v", rooms)
	}
}

func TestStoreActiveRoomsDistinct(t *testing.T) {
	s := NewStore()

	s.Upsert("c1", "alice", "lobby")
	s.Upsert("c2", "bob", "lobby")
	s.Upsert("c3", "carol", "den")

	rooms := s.ActiveRooms()
	if len(rooms) != 2 || rooms[0] != "den" || rooms[1] != "lobby" {
		t.Fatalf("unexpected active rooms: %v", rooms)
	}
}

// A room name appears in ActiveRooms exactly when its roster is non-empty.
func TestStoreRoomListMatchesRosters(t *testing.T) {
	s := NewStore()

	s.Upsert("c1", "alice", "lobby")
	s.Upsert("c2", "bob", "den")
	s.Remove("c2")

	for _, room := range s.ActiveRooms() {
		if len(s.RoomRoster(room)) == 0 {
			t.Fatalf("active room %q has empty roster", room)
		}
	}
	if len(s.RoomRoster("den")) != 0 {
		t.Fatal("den should be empty after its only participant left")
	}
	if rooms := s.ActiveRooms(); len(rooms) != 1 || rooms[0] != "lobby" {
		t.Fatalf("unexpected active rooms: %v", rooms)
	}
}

func TestStoreRosterSortedByName(t *testing.T) {
	s := NewStore()

	s.Upsert("c1", "zoe", "lobby")
	s.Upsert("c2", "alice", "lobby")
	s.Upsert("c3", "mike", "lobby")

	roster := s.RoomRoster("lobby")
	if len(roster) != 3 {
		t.Fatalf("roster size = %d, want 3", len(roster))
	}
	for i := 1; i < len(roster); i++ {
		if roster[i-1].Name > roster[i].Name {
			t.Fatalf("roster not sorted: %+v", roster)
		}
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", n)
			for j := 0; j < 100; j++ {
				s.Upsert(id, "user", "lobby")
				s.Lookup(id)
				s.RoomRoster("lobby")
				s.ActiveRooms()
				s.Remove(id)
			}
		}(i)
	}
	wg.Wait()

	if rooms := s.ActiveRooms(); len(rooms) != 0 {
		t.Fatalf("active rooms not empty after cleanup: %v", rooms)
	}
}
