package http

import (
	"encoding/json"

	"github.com/vovakirdan/chatrelay-server/internal/core"
	"github.com/vovakirdan/chatrelay-server/internal/proto"
)

func inboundToCommand(systemName string, inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeEnterRoom:
		var enter proto.EnterRoomData
		if err := json.Unmarshal(inbound.Data, &enter); err != nil {
			return nil, nil, err
		}
		if enter.Name == "" || enter.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "name and room are required"}, nil
		}
		// The system identity is never a valid display name.
		if enter.Name == systemName {
			return nil, &proto.Error{Code: core.ErrCodeReservedName, Msg: "name is reserved"}, nil
		}
		return &core.Command{
			Kind: core.CommandEnterRoom,
			Name: enter.Name,
			Room: enter.Room,
		}, nil, nil
	case proto.InboundTypeMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandSendMessage,
			Name: msg.Name,
			Text: msg.Text,
		}, nil, nil
	case proto.InboundTypeActivity:
		var name string
		if err := json.Unmarshal(inbound.Data, &name); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandActivity,
			Name: name,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventChatMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: proto.MessagePayload{
				Name: event.Message.Name,
				Text: event.Message.Text,
				Time: event.Message.Time,
			},
		}
	case core.EventUserList:
		users := make([]proto.User, 0, len(event.Users))
		for _, p := range event.Users {
			users = append(users, proto.User{
				ID:   p.ID,
				Name: p.Name,
				Room: p.Room,
			})
		}
		return proto.Outbound{
			Type: proto.OutboundTypeUserList,
			Data: proto.UserListPayload{Users: users},
		}
	case core.EventRoomList:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomList,
			Data: proto.RoomListPayload{Rooms: event.Rooms},
		}
	case core.EventActivity:
		return proto.Outbound{
			Type: proto.OutboundTypeActivity,
			Data: event.User,
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{
			Code: "unknown",
			Msg:  "unknown event",
		}}
	}
}
