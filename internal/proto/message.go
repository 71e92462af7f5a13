package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeEnterRoom = "enterRoom"
	InboundTypeMessage   = "message"
	InboundTypeActivity  = "activity"

	OutboundTypeMessage  = "message"
	OutboundTypeUserList = "userList"
	OutboundTypeRoomList = "roomList"
	OutboundTypeActivity = "activity"
	OutboundTypeError    = "error"
)

// EnterRoomData requests to join a room under a display name.
type EnterRoomData struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

// MessageData is a chat message from the client.
type MessageData struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// MessagePayload is a chat or system message.
type MessagePayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// UserListPayload is the current roster of one room.
type UserListPayload struct {
	Users []User `json:"users"`
}

// User is a roster entry.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}

// RoomListPayload lists every room with at least one participant.
type RoomListPayload struct {
	Rooms []string `json:"rooms"`
}

// Error describes a protocol-level error response. It is only ever sent
// to the connection that caused it.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
