package services

import (
	"context"
	"errors"
	"log"

	"github.com/alekseyev/meetpoint/internal/database"
	"github.com/alekseyev/meetpoint/pkg/auth"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	ErrTokenMissing = errors.New("no token provided")
	ErrTokenInvalid = errors.New("invalid token")
)

// Identity - результат проверки токена: стабильный идентификатор
// пользователя и снимок отображаемого имени на момент подключения
type Identity struct {
	UserID      uuid.UUID
	DisplayName string
}

// IdentityVerifier проверяет токен соединения и разрешает его
// в пользователя. Вызывается один раз на каждое новое соединение.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// IdentityService - рабочая реализация поверх JWT, черного списка
// в Redis и таблицы пользователей
type IdentityService struct {
	db    *database.Database
	jwt   *auth.JWTManager
	redis *redis.Client
}

func NewIdentityService(db *database.Database, jwtManager *auth.JWTManager, rdb *redis.Client) *IdentityService {
	return &IdentityService{db: db, jwt: jwtManager, redis: rdb}
}

func (s *IdentityService) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	// Проверяем, не в черном списке ли токен
	exists, err := s.redis.Exists(ctx, "blacklist:"+token).Result()
	if err != nil || exists > 0 {
		return nil, ErrTokenInvalid
	}

	claims, err := s.jwt.Verify(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrTokenInvalid
	}

	// Токен мог пережить удаление пользователя
	user, err := s.db.GetUser(userID.String())
	if err != nil {
		log.Printf("Token resolves to missing user %s", userID)
		return nil, ErrTokenInvalid
	}

	return &Identity{
		UserID:      user.ID,
		DisplayName: user.Name,
	}, nil
}
