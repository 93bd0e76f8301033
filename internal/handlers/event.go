package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alekseyev/meetpoint/internal/database"
	"github.com/alekseyev/meetpoint/internal/handlers/dto"
	"github.com/alekseyev/meetpoint/internal/middleware"
	"github.com/alekseyev/meetpoint/internal/models"
	"github.com/alekseyev/meetpoint/pkg/geo"
)

type EventHandler struct {
	db *database.Database
}

func NewEventHandler(db *database.Database) *EventHandler {
	return &EventHandler{db: db}
}

// ListEvents возвращает события с опциональными фильтрами по месту и тексту
func (h *EventHandler) ListEvents(c *gin.Context) {
	location := c.Query("location")
	search := c.Query("search")

	events, err := h.db.ListEvents(location, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	response := make([]gin.H, len(events))
	for i := range events {
		response[i] = formatEventResponse(&events[i])
	}

	c.JSON(http.StatusOK, response)
}

// NearbyEvents возвращает события в радиусе от точки, отсортированные
// по расстоянию
func (h *EventHandler) NearbyEvents(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	radiusStr := c.DefaultQuery("radius", "10")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: lat and lng"})
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	radius, errRadius := strconv.ParseFloat(radiusStr, 64)
	if errLat != nil || errLng != nil || errRadius != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters: lat, lng, and radius must be valid numbers"})
		return
	}

	if err := validateNearbyParams(lat, lng, radius); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	events, err := h.db.EventsWithCoordinates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby events"})
		return
	}

	type eventWithDistance struct {
		event    *models.Event
		distance float64
	}

	nearby := make([]eventWithDistance, 0)
	for i := range events {
		e := &events[i]
		d := geo.Distance(lat, lng, *e.Latitude, *e.Longitude)
		if d <= radius {
			nearby = append(nearby, eventWithDistance{event: e, distance: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].distance < nearby[j].distance
	})

	response := make([]gin.H, len(nearby))
	for i, item := range nearby {
		formatted := formatEventResponse(item.event)
		formatted["distance"] = item.distance
		response[i] = formatted
	}

	c.JSON(http.StatusOK, gin.H{
		"location": gin.H{"latitude": lat, "longitude": lng},
		"radius":   radius,
		"count":    len(response),
		"events":   response,
	})
}

// validateNearbyParams проверяет диапазоны координат и радиуса.
// Возвращает текст ошибки или пустую строку.
func validateNearbyParams(lat, lng, radius float64) string {
	if lat < -90 || lat > 90 {
		return "Invalid latitude: must be between -90 and 90"
	}
	if lng < -180 || lng > 180 {
		return "Invalid longitude: must be between -180 and 180"
	}
	if radius < 0 || radius > 500 {
		return "Invalid radius: must be between 0 and 500 km"
	}
	return ""
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.db.GetEvent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, formatEventResponse(event))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.MaxParticipants <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxParticipants must be greater than 0"})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	event := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Date:            date,
		MaxParticipants: req.MaxParticipants,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		CreatorID:       userID,
	}

	if err := h.db.CreateEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, formatEventResponse(event))
}

// UpdateEvent обновляет событие, доступно только создателю
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	event, err := h.db.GetEvent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this event"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Обновляем только переданные поля
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
			return
		}
		event.Date = date
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants < event.CurrentParticipants {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot set max participants below current participants"})
			return
		}
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.Latitude != nil {
		event.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		event.Longitude = req.Longitude
	}

	if err := h.db.UpdateEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, formatEventResponse(event))
}

// DeleteEvent удаляет событие вместе с историей чата, только создатель
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	eventID := c.Param("id")

	event, err := h.db.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this event"})
		return
	}

	if err := h.db.DeleteEvent(eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully", "id": eventID})
}

// JoinEvent записывает пользователя на событие
func (h *EventHandler) JoinEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	eventID := c.Param("id")

	event, err := h.db.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.HasParticipant(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already joined this event"})
		return
	}

	if event.CurrentParticipants >= event.MaxParticipants {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is full"})
		return
	}

	if err := h.db.AddUserToEvent(userID.String(), eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	event, err = h.db.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	c.JSON(http.StatusOK, formatEventResponse(event))
}

// LeaveEvent убирает пользователя с события
func (h *EventHandler) LeaveEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	eventID := c.Param("id")

	event, err := h.db.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if !event.HasParticipant(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not a participant of this event"})
		return
	}

	if err := h.db.RemoveUserFromEvent(userID.String(), eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	event, err = h.db.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	c.JSON(http.StatusOK, formatEventResponse(event))
}

func formatEventResponse(event *models.Event) gin.H {
	return gin.H{
		"id":                  event.ID,
		"title":               event.Title,
		"description":         event.Description,
		"location":            event.Location,
		"date":                event.Date.Format(time.RFC3339),
		"maxParticipants":     event.MaxParticipants,
		"currentParticipants": event.CurrentParticipants,
		"latitude":            event.Latitude,
		"longitude":           event.Longitude,
		"creatorId":           event.CreatorID,
		"participants":        event.ParticipantIDs(),
		"createdAt":           event.CreatedAt.Format(time.RFC3339),
		"updatedAt":           event.UpdatedAt.Format(time.RFC3339),
	}
}
