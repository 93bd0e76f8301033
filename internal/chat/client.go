package chat

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего события
	maxEventSize = 64 * 1024
)

// Client - одно живое websocket-соединение. Создается только после
// успешной проверки токена, поэтому UserID и DisplayName всегда заполнены.
type Client struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Conn        *websocket.Conn
	Send        chan []byte
	Hub         *Hub
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, displayName string) *Client {
	return &Client{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: displayName,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Hub:         hub,
	}
}

// Session возвращает данные сессии для обработки событий
func (c *Client) Session() Session {
	return Session{
		ClientID:    c.ID,
		UserID:      c.UserID,
		DisplayName: c.DisplayName,
	}
}

// ReadPump читает события от клиента и передает их gateway.
// События одного соединения обрабатываются строго по порядку.
// Очистка при разрыве выполняется ровно один раз.
func (c *Client) ReadPump(gateway *Gateway) {
	defer func() {
		gateway.Disconnect(c.Session())
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxEventSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var evt Event
		err := c.Conn.ReadJSON(&evt)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		if err := gateway.Handle(c.Session(), &evt); err != nil {
			log.Printf("Error handling %s event: %v", evt.Type, err)
		}
	}
}

// WritePump отправляет события клиенту
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// queue ставит событие в очередь отправки без блокировки.
// Медленный клиент не должен тормозить рассылку всей комнате.
func (c *Client) queue(data []byte) error {
	select {
	case c.Send <- data:
		return nil
	default:
		return ErrClientQueueFull
	}
}
