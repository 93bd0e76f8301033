package database

import (
	"log"
	"time"

	"github.com/alekseyev/meetpoint/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

// SeedEvents наполняет пустую базу примерами событий,
// чтобы карта не была пустой при первом запуске
func (d *Database) SeedEvents() error {
	count, err := d.CountEvents()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	organizer, err := d.FindUserByEmail("organizer@example.com")
	if err != nil {
		organizer = &models.User{
			Name:         "Event Organizer",
			Email:        "organizer@example.com",
			PasswordHash: "$2a$10$1234567890123456789012",
			CreatedAt:    time.Now(),
		}
		if err := d.SaveUser(organizer); err != nil {
			return err
		}
	}

	events := []models.Event{
		{
			Title:           "Tech Meetup 2025",
			Description:     "An evening of networking and tech talks featuring industry leaders.",
			Location:        "San Francisco, CA",
			Date:            time.Date(2025, 11, 15, 18, 0, 0, 0, time.UTC),
			MaxParticipants: 50,
			Latitude:        floatPtr(37.7749),
			Longitude:       floatPtr(-122.4194),
			CreatorID:       organizer.ID,
		},
		{
			Title:           "Morning Yoga in the Park",
			Description:     "Start your day with a refreshing yoga class. All levels welcome!",
			Location:        "Central Park, New York, NY",
			Date:            time.Date(2025, 11, 5, 8, 0, 0, 0, time.UTC),
			MaxParticipants: 20,
			Latitude:        floatPtr(40.785091),
			Longitude:       floatPtr(-73.968285),
			CreatorID:       organizer.ID,
		},
		{
			Title:           "Startup Pitch Night",
			Description:     "Watch innovative startups pitch their ideas to investors.",
			Location:        "Austin, TX",
			Date:            time.Date(2025, 11, 20, 19, 0, 0, 0, time.UTC),
			MaxParticipants: 100,
			Latitude:        floatPtr(30.2672),
			Longitude:       floatPtr(-97.7431),
			CreatorID:       organizer.ID,
		},
		{
			Title:           "Coffee & Code",
			Description:     "Casual coding session with local developers. Bring your laptop!",
			Location:        "Seattle, WA",
			Date:            time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC),
			MaxParticipants: 30,
			Latitude:        floatPtr(47.6062),
			Longitude:       floatPtr(-122.3321),
			CreatorID:       organizer.ID,
		},
		{
			Title:           "Photography Walk",
			Description:     "Explore the city through your lens with fellow enthusiasts.",
			Location:        "Boston, MA",
			Date:            time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
			MaxParticipants: 15,
			Latitude:        floatPtr(42.3601),
			Longitude:       floatPtr(-71.0589),
			CreatorID:       organizer.ID,
		},
	}

	for i := range events {
		if err := d.CreateEvent(&events[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d sample events", len(events))
	return nil
}
