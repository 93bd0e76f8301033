package chat

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/alekseyev/meetpoint/internal/models"
	"github.com/google/uuid"
)

// historyLimit - сколько последних сообщений отдается при входе в комнату
const historyLimit = 20

// MessageStore - персистентное хранилище сообщений чата.
// Реализуется базой, в тестах подменяется фейком.
type MessageStore interface {
	SaveChatMessage(roomID, authorID uuid.UUID, authorName, body string) (*models.ChatMessage, error)
	RecentMessages(roomID uuid.UUID, limit int) ([]models.ChatMessage, error)
	MarkMessageRead(messageID, userID uuid.UUID) (*models.ChatMessage, bool, error)
}

// Sender доставляет закодированные события соединениям.
// Реализуется Hub.
type Sender interface {
	SendToClient(clientID uuid.UUID, data []byte)
	SendToRoom(roomID uuid.UUID, data []byte)
	SendToRoomExcept(roomID, exclude uuid.UUID, data []byte)
}

// Session - данные аутентифицированного соединения
type Session struct {
	ClientID    uuid.UUID
	UserID      uuid.UUID
	DisplayName string
}

// Gateway обрабатывает события протокола чата. Владеет порядком
// "сначала запись в хранилище, потом рассылка": событие уходит в комнату
// только после подтверждения записи, поэтому порядок рассылки в комнате
// совпадает с порядком сохранения.
type Gateway struct {
	store    MessageStore
	registry *Registry
	sender   Sender

	// mu держится на всю пару "запись + рассылка": соединения читают
	// события в своих горутинах, и без общей блокировки рассылка
	// могла бы обогнать более раннюю завершенную запись
	mu sync.Mutex
}

func NewGateway(store MessageStore, registry *Registry, sender Sender) *Gateway {
	return &Gateway{
		store:    store,
		registry: registry,
		sender:   sender,
	}
}

// Handle разбирает событие клиента и вызывает нужный обработчик
func (g *Gateway) Handle(sess Session, evt *Event) error {
	switch evt.Type {
	case TypeJoinRoom:
		var payload JoinRoomPayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return ErrInvalidEvent
		}
		return g.handleJoinRoom(sess, payload)

	case TypeSendMessage:
		var payload SendMessagePayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return ErrInvalidEvent
		}
		return g.handleSendMessage(sess, payload)

	case TypeTyping:
		var payload TypingPayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return ErrInvalidEvent
		}
		return g.handleTyping(sess, payload)

	case TypeMarkRead:
		var payload MarkReadPayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return ErrInvalidEvent
		}
		return g.handleMarkRead(sess, payload)

	case TypeLeaveRoom:
		var payload LeaveRoomPayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return ErrInvalidEvent
		}
		return g.handleLeaveRoom(sess, payload)

	default:
		log.Printf("Unknown event type: %s", evt.Type)
		return nil
	}
}

// handleJoinRoom добавляет соединение в комнату, отправляет вошедшему
// историю и рассылает всем обновленный список участников
func (g *Gateway) handleJoinRoom(sess Session, payload JoinRoomPayload) error {
	members := g.registry.Join(payload.RoomID, Member{
		ClientID:    sess.ClientID,
		UserID:      sess.UserID,
		DisplayName: sess.DisplayName,
	})

	history, err := g.store.RecentMessages(payload.RoomID, historyLimit)
	if err != nil {
		log.Printf("Error loading room history: %v", err)
		g.sendError(sess, "Failed to join room")
		return nil
	}
	if history == nil {
		history = []models.ChatMessage{}
	}

	// История уходит только вошедшему
	data, err := encodeEvent(TypeLoadMessages, history)
	if err != nil {
		return err
	}
	g.sender.SendToClient(sess.ClientID, data)

	joined, err := encodeEvent(TypeUserJoined, UserJoinedPayload{
		DisplayName:   sess.DisplayName,
		ActiveMembers: memberInfos(members),
	})
	if err != nil {
		return err
	}
	g.sender.SendToRoom(payload.RoomID, joined)

	return nil
}

// handleSendMessage сохраняет сообщение и рассылает его комнате.
// Пустой текст молча игнорируется, слишком длинный возвращает
// ошибку только отправителю.
func (g *Gateway) handleSendMessage(sess Session, payload SendMessagePayload) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	message, err := g.store.SaveChatMessage(payload.RoomID, sess.UserID, sess.DisplayName, payload.Body)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyBody):
			return nil
		case errors.Is(err, models.ErrBodyTooLong):
			g.sendError(sess, "Message too long (max 1000 characters)")
			return nil
		default:
			log.Printf("Error saving message: %v", err)
			g.sendError(sess, "Failed to send message")
			return nil
		}
	}

	data, err := encodeEvent(TypeNewMessage, message)
	if err != nil {
		return err
	}
	g.sender.SendToRoom(payload.RoomID, data)

	return nil
}

// handleTyping рассылает индикатор набора всем, кроме отправителя.
// Членство в комнате намеренно не проверяется.
func (g *Gateway) handleTyping(sess Session, payload TypingPayload) error {
	data, err := encodeEvent(TypeUserTyping, UserTypingPayload{
		UserID:      sess.UserID,
		DisplayName: sess.DisplayName,
		IsTyping:    payload.IsTyping,
	})
	if err != nil {
		return err
	}
	g.sender.SendToRoomExcept(payload.RoomID, sess.ClientID, data)

	return nil
}

// handleMarkRead отмечает сообщение прочитанным. Рассылка идет только
// при первой отметке; повторная отметка и отсутствующее сообщение
// не видны клиентам.
func (g *Gateway) handleMarkRead(sess Session, payload MarkReadPayload) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	message, changed, err := g.store.MarkMessageRead(payload.MessageID, sess.UserID)
	if err != nil {
		log.Printf("Error marking message as read: %v", err)
		return nil
	}

	if !changed {
		return nil
	}

	data, err := encodeEvent(TypeMessageRead, MessageReadPayload{
		MessageID: message.ID,
		UserID:    sess.UserID,
		ReadBy:    message.ReadBy,
	})
	if err != nil {
		return err
	}
	g.sender.SendToRoom(message.RoomID, data)

	return nil
}

// handleLeaveRoom убирает соединение из комнаты. Если кто-то остался,
// им уходит обновленный список, опустевшая комната никого не уведомляет.
func (g *Gateway) handleLeaveRoom(sess Session, payload LeaveRoomPayload) error {
	remaining := g.registry.Leave(payload.RoomID, sess.ClientID)
	if len(remaining) == 0 {
		return nil
	}

	data, err := encodeEvent(TypeUserLeft, UserLeftPayload{
		DisplayName:   sess.DisplayName,
		ActiveMembers: memberInfos(remaining),
	})
	if err != nil {
		return err
	}
	g.sender.SendToRoom(payload.RoomID, data)

	return nil
}

// Disconnect убирает соединение из всех комнат и уведомляет те,
// где остались участники. Вызывается ровно один раз при разрыве.
func (g *Gateway) Disconnect(sess Session) {
	for roomID, remaining := range g.registry.LeaveAll(sess.ClientID) {
		if len(remaining) == 0 {
			continue
		}

		data, err := encodeEvent(TypeUserLeft, UserLeftPayload{
			DisplayName:   sess.DisplayName,
			ActiveMembers: memberInfos(remaining),
		})
		if err != nil {
			log.Printf("Error encoding user_left event: %v", err)
			continue
		}
		g.sender.SendToRoom(roomID, data)
	}
}

func (g *Gateway) sendError(sess Session, message string) {
	data, err := encodeEvent(TypeError, ErrorPayload{Message: message})
	if err != nil {
		log.Printf("Error encoding error event: %v", err)
		return
	}
	g.sender.SendToClient(sess.ClientID, data)
}

func memberInfos(members []Member) []MemberInfo {
	infos := make([]MemberInfo, len(members))
	for i, m := range members {
		infos[i] = MemberInfo{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
		}
	}
	return infos
}
