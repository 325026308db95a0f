// Package domain contains core concepts of the chat system.
// This file defines Message entities and their delivery state machine.
// Messages are validated by the domain services before they reach storage.
package domain

import "time"

type MessageType string

const (
	TypeText  MessageType = "text"
	TypeFile  MessageType = "file"
	TypeImage MessageType = "image"
	TypeAudio MessageType = "audio"
	TypeVideo MessageType = "video"
)

var MessageTypes = []MessageType{TypeText, TypeFile, TypeImage, TypeAudio, TypeVideo}

func (t MessageType) Valid() bool {
	for _, known := range MessageTypes {
		if t == known {
			return true
		}
	}
	return false
}

type MessageStatus string

const (
	StatusSent MessageStatus = "sent"
	StatusRead MessageStatus = "read"
)

// CanTransitionTo reports whether a message may move from s to next.
// sent -> read is the only legal transition.
func (s MessageStatus) CanTransitionTo(next MessageStatus) bool {
	return s == StatusSent && next == StatusRead
}

// Message is addressed to exactly one of ToUser or ToGroup.
// For file messages Content holds the stored file path, never the bytes.
type Message struct {
	ID        string
	Content   string
	FromUser  string
	ToUser    string
	ToGroup   string
	Type      MessageType
	Status    MessageStatus
	Timestamp time.Time
}

func (m Message) IsPrivate() bool {
	return m.ToUser != "" && m.ToGroup == ""
}

func (m Message) IsGroup() bool {
	return m.ToGroup != "" && m.ToUser == ""
}

// Involves reports whether the private message was exchanged between a and b,
// in either direction.
func (m Message) Involves(a, b string) bool {
	if !m.IsPrivate() {
		return false
	}
	return (m.FromUser == a && m.ToUser == b) || (m.FromUser == b && m.ToUser == a)
}
