package core

import (
	"strings"
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustMessage waits for a chat message whose text contains want,
// discarding everything else.
func mustMessage(t *testing.T, ch <-chan *Event, want string) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == EventChatMessage && strings.Contains(ev.Message.Text, want) {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected chat message containing %q not received", want)
	return nil
}

// mustRoster waits for a userList event whose names match want exactly,
// discarding everything else (including stale rosters from earlier joins).
func mustRoster(t *testing.T, ch <-chan *Event, want ...string) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == EventUserList && equalStrings(rosterNames(ev), want) {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected roster %v not received", want)
	return nil
}

// mustRooms waits for a roomList event matching want exactly.
func mustRooms(t *testing.T, ch <-chan *Event, want ...string) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == EventRoomList && equalStrings(ev.Rooms, want) {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected room list %v not received", want)
	return nil
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// drain returns every event currently buffered for the client.
func drain(ch <-chan *Event) []*Event {
	var events []*Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func rosterNames(ev *Event) []string {
	names := make([]string, 0, len(ev.Users))
	for _, p := range ev.Users {
		names = append(names, p.Name)
	}
	return names
}
