package models

import (
	"github.com/google/uuid"
	"time"
)

// ChatMessage - сообщение в чате события. Комната чата идентифицируется
// идентификатором события (RoomID == Event.ID).
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID     uuid.UUID `gorm:"not null;index:idx_chat_messages_room_sent" json:"roomId"`
	AuthorID   uuid.UUID `gorm:"not null" json:"authorId"`
	AuthorName string    `gorm:"not null" json:"authorName"`
	Body       string    `gorm:"not null" json:"body"`
	SentAt     time.Time `gorm:"index:idx_chat_messages_room_sent" json:"sentAt"`
	ReadBy     ReadBySet `gorm:"serializer:json;type:jsonb" json:"readBy"`
}

// ReadBySet - множество пользователей, прочитавших сообщение.
// Растет только добавлением, автор попадает в него при создании.
type ReadBySet []uuid.UUID

func (s ReadBySet) Contains(userID uuid.UUID) bool {
	for _, id := range s {
		if id == userID {
			return true
		}
	}
	return false
}

// Add добавляет пользователя, если его еще нет в множестве
func (s ReadBySet) Add(userID uuid.UUID) ReadBySet {
	if s.Contains(userID) {
		return s
	}
	return append(s, userID)
}
