package models

import (
	"github.com/google/uuid"
	"time"
)

type Event struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	Description         string    `gorm:"not null" json:"description"`
	Location            string    `gorm:"not null" json:"location"`
	Date                time.Time `gorm:"not null" json:"date"`
	MaxParticipants     int       `gorm:"not null" json:"maxParticipants"`
	CurrentParticipants int       `gorm:"default:0" json:"currentParticipants"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	CreatorID           uuid.UUID `json:"creatorId"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	// Связи
	Participants []User `gorm:"many2many:event_participants" json:"-"`
}

// ParticipantIDs возвращает идентификаторы участников для ответа API
func (e *Event) ParticipantIDs() []string {
	ids := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		ids[i] = p.ID.String()
	}
	return ids
}

// HasParticipant проверяет, записан ли пользователь на событие
func (e *Event) HasParticipant(userID uuid.UUID) bool {
	for _, p := range e.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
