package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/alekseyev/meetpoint/internal/handlers"
	"github.com/alekseyev/meetpoint/internal/middleware"
	"github.com/alekseyev/meetpoint/pkg/auth"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, eventH *handlers.EventHandler, wsH *handlers.WebSocketHandler, jwtMgr *auth.JWTManager, rdb *redis.Client) {
	authRequired := middleware.AuthMiddleware(jwtMgr, rdb)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// Auth endpoints
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
		authGroup.GET("/me", authRequired, authH.Me)
	}

	// Event endpoints
	events := r.Group("/api/events")
	{
		events.GET("", eventH.ListEvents)
		events.GET("/nearby", eventH.NearbyEvents)
		events.GET("/:id", eventH.GetEvent)
		events.POST("", authRequired, eventH.CreateEvent)
		events.PUT("/:id", authRequired, eventH.UpdateEvent)
		events.DELETE("/:id", authRequired, eventH.DeleteEvent)
		events.PATCH("/:id/join", authRequired, eventH.JoinEvent)
		events.PATCH("/:id/leave", authRequired, eventH.LeaveEvent)
	}

	// Чат живет на websocket, токен проверяется при подключении
	r.GET("/ws", wsH.HandleWebSocket)
}
