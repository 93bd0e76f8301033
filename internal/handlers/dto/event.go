package dto

type CreateEventRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	MaxParticipants int      `json:"maxParticipants" binding:"required"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

type UpdateEventRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Date            *string  `json:"date"`
	MaxParticipants *int     `json:"maxParticipants"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}
