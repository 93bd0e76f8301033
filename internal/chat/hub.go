package chat

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub владеет живыми соединениями и доставляет события
// участникам комнат по данным реестра
type Hub struct {
	clients  map[uuid.UUID]*Client
	registry *Registry

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Контекст для graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(registry *Registry) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		registry:   registry,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run запускает hub
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

// Stop останавливает hub и закрывает все соединения
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
	h.clients = make(map[uuid.UUID]*Client)
}

// Register регистрирует нового клиента.
// После остановки hub вызов становится no-op, а не вечной блокировкой.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister отменяет регистрацию клиента
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	log.Printf("Client registered: %s (User: %s)", client.ID, client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)

		log.Printf("Client unregistered: %s (User: %s)", client.ID, client.UserID)
	}
}

// SendToClient отправляет событие одному соединению
func (h *Hub) SendToClient(clientID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if client, ok := h.clients[clientID]; ok {
		if err := client.queue(data); err != nil {
			log.Printf("Dropping event for client %s: %v", clientID, err)
		}
	}
}

// SendToRoom отправляет событие всем участникам комнаты
func (h *Hub) SendToRoom(roomID uuid.UUID, data []byte) {
	h.sendToRoomExcept(roomID, uuid.Nil, data)
}

// SendToRoomExcept отправляет событие всем участникам комнаты, кроме одного
func (h *Hub) SendToRoomExcept(roomID, exclude uuid.UUID, data []byte) {
	h.sendToRoomExcept(roomID, exclude, data)
}

func (h *Hub) sendToRoomExcept(roomID, exclude uuid.UUID, data []byte) {
	members := h.registry.Members(roomID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, member := range members {
		if member.ClientID == exclude {
			continue
		}
		if client, ok := h.clients[member.ClientID]; ok {
			if err := client.queue(data); err != nil {
				log.Printf("Dropping event for client %s: %v", member.ClientID, err)
			}
		}
	}
}
