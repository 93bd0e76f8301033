package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/alekseyev/meetpoint/internal/chat"
	"github.com/alekseyev/meetpoint/internal/services"
)

// WebSocketHandler поднимает websocket-соединения чата
type WebSocketHandler struct {
	hub      *chat.Hub
	gateway  *chat.Gateway
	identity services.IdentityVerifier
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *chat.Hub, gateway *chat.Gateway, identity services.IdentityVerifier) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		gateway:  gateway,
		identity: identity,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: Проверить origin в prod
				return true
			},
		},
	}
}

// HandleWebSocket проверяет токен один раз и передает соединение hub.
// Неавторизованное соединение отклоняется до апгрейда, никакого
// состояния для него не создается.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	token := extractToken(c)

	identity, err := h.identity.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := chat.NewClient(h.hub, conn, identity.UserID, identity.DisplayName)

	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.gateway)
}

func extractToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}

	return ""
}
