package database

import (
	"time"

	"github.com/alekseyev/meetpoint/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveChatMessage валидирует текст, проставляет время отправки и сохраняет
// сообщение. Автор сразу попадает в readBy.
func (d *Database) SaveChatMessage(roomID, authorID uuid.UUID, authorName, body string) (*models.ChatMessage, error) {
	normalized, err := models.NormalizeMessageBody(body)
	if err != nil {
		return nil, err
	}

	message := &models.ChatMessage{
		RoomID:     roomID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       normalized,
		SentAt:     time.Now(),
		ReadBy:     models.ReadBySet{authorID},
	}

	if err := d.db.Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}

// RecentMessages получает последние limit сообщений комнаты
// в хронологическом порядке
func (d *Database) RecentMessages(roomID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage

	err := d.db.
		Where("room_id = ?", roomID).
		Order("sent_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	// Разворачиваем порядок, чтобы старые сообщения были первыми
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkMessageRead идемпотентно добавляет пользователя в readBy сообщения.
// Возвращает сообщение и признак того, что множество изменилось.
// Строка блокируется на время транзакции, конкурентные отметки
// одного сообщения сериализуются.
func (d *Database) MarkMessageRead(messageID, userID uuid.UUID) (*models.ChatMessage, bool, error) {
	var message models.ChatMessage
	changed := false

	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&message, "id = ?", messageID).Error; err != nil {
			return err
		}

		if message.ReadBy.Contains(userID) {
			return nil
		}

		message.ReadBy = message.ReadBy.Add(userID)
		if err := tx.Model(&message).Update("read_by", message.ReadBy).Error; err != nil {
			return err
		}

		changed = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}

	return &message, changed, nil
}
