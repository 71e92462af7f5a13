package core

import "time"

// Message is a chat message as delivered to clients. Time is formatted
// at receipt; it is presentation, not protocol state.
type Message struct {
	Name string
	Text string
	Time string
}

// timeFormat is a human-readable wall-clock stamp (hour:minute:second).
const timeFormat = "15:04:05"

func buildMessage(name, text string, now time.Time) Message {
	return Message{
		Name: name,
		Text: text,
		Time: now.Format(timeFormat),
	}
}
