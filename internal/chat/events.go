package chat

import (
	"encoding/json"

	"github.com/alekseyev/meetpoint/internal/models"
	"github.com/google/uuid"
)

// EventType определяет типы событий протокола
type EventType string

const (
	// Клиент -> сервер
	TypeJoinRoom    EventType = "join_room"
	TypeSendMessage EventType = "send_message"
	TypeTyping      EventType = "typing"
	TypeMarkRead    EventType = "mark_read"
	TypeLeaveRoom   EventType = "leave_room"

	// Сервер -> клиент
	TypeLoadMessages EventType = "load_messages"
	TypeNewMessage   EventType = "new_message"
	TypeUserJoined   EventType = "user_joined"
	TypeUserLeft     EventType = "user_left"
	TypeUserTyping   EventType = "user_typing"
	TypeMessageRead  EventType = "message_read"
	TypeError        EventType = "error"
)

// Event - конверт протокола в обе стороны
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type JoinRoomPayload struct {
	RoomID uuid.UUID `json:"roomId"`
}

type SendMessagePayload struct {
	RoomID uuid.UUID `json:"roomId"`
	Body   string    `json:"body"`
}

type TypingPayload struct {
	RoomID   uuid.UUID `json:"roomId"`
	IsTyping bool      `json:"isTyping"`
}

type MarkReadPayload struct {
	MessageID uuid.UUID `json:"messageId"`
}

type LeaveRoomPayload struct {
	RoomID uuid.UUID `json:"roomId"`
}

// MemberInfo - один участник комнаты в списке activeMembers.
// Каждое соединение считается отдельным участником.
type MemberInfo struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
}

type UserJoinedPayload struct {
	DisplayName   string       `json:"displayName"`
	ActiveMembers []MemberInfo `json:"activeMembers"`
}

type UserLeftPayload struct {
	DisplayName   string       `json:"displayName"`
	ActiveMembers []MemberInfo `json:"activeMembers"`
}

type UserTypingPayload struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	IsTyping    bool      `json:"isTyping"`
}

type MessageReadPayload struct {
	MessageID uuid.UUID        `json:"messageId"`
	UserID    uuid.UUID        `json:"userId"`
	ReadBy    models.ReadBySet `json:"readBy"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// encodeEvent собирает конверт с сериализованным payload
func encodeEvent(eventType EventType, payload interface{}) ([]byte, error) {
	evt := Event{Type: eventType}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		evt.Data = data
	}

	return json.Marshal(evt)
}
