package database

import (
	"github.com/alekseyev/meetpoint/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateEvent(event *models.Event) error {
	return d.db.Create(event).Error
}

func (d *Database) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	if err := d.db.Preload("Participants").First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents возвращает события по дате, с фильтрами по месту и тексту
func (d *Database) ListEvents(location, search string) ([]models.Event, error) {
	var events []models.Event

	query := d.db.Model(&models.Event{})

	if location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	err := query.
		Order("date ASC").
		Preload("Participants").
		Find(&events).Error

	return events, err
}

// EventsWithCoordinates возвращает события, у которых заданы координаты
func (d *Database) EventsWithCoordinates() ([]models.Event, error) {
	var events []models.Event

	err := d.db.
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Preload("Participants").
		Find(&events).Error

	return events, err
}

func (d *Database) UpdateEvent(event *models.Event) error {
	return d.db.Save(event).Error
}

func (d *Database) DeleteEvent(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ChatMessage{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		var event models.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&event).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&event).Error
	})
}

// AddUserToEvent записывает пользователя на событие и обновляет счетчик
func (d *Database) AddUserToEvent(userID, eventID string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		var event models.Event

		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			return err
		}

		if err := tx.Model(&event).Association("Participants").Append(&user); err != nil {
			return err
		}

		count := tx.Model(&event).Association("Participants").Count()
		return tx.Model(&event).Update("current_participants", count).Error
	})
}

// RemoveUserFromEvent убирает пользователя с события и обновляет счетчик
func (d *Database) RemoveUserFromEvent(userID, eventID string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		var event models.Event

		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			return err
		}

		if err := tx.Model(&event).Association("Participants").Delete(&user); err != nil {
			return err
		}

		count := tx.Model(&event).Association("Participants").Count()
		return tx.Model(&event).Update("current_participants", count).Error
	})
}

func (d *Database) CountEvents() (int64, error) {
	var count int64
	err := d.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
