package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Member - участник комнаты, привязан к конкретному соединению.
// Один пользователь с несколькими вкладками дает несколько участников.
type Member struct {
	ClientID    uuid.UUID
	UserID      uuid.UUID
	DisplayName string
}

// Registry хранит участников комнат в памяти процесса.
// Создается один раз при старте сервера и передается в Hub и Gateway,
// в тестах каждый тест получает свой экземпляр.
type Registry struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]map[uuid.UUID]Member
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[uuid.UUID]map[uuid.UUID]Member),
	}
}

// Join добавляет участника и возвращает обновленный список комнаты
func (r *Registry) Join(roomID uuid.UUID, member Member) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		room = make(map[uuid.UUID]Member)
		r.rooms[roomID] = room
	}

	room[member.ClientID] = member

	return membersOf(room)
}

// Leave убирает соединение из комнаты и возвращает оставшихся.
// Пустая комната удаляется из реестра.
func (r *Registry) Leave(roomID, clientID uuid.UUID) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}

	delete(room, clientID)

	if len(room) == 0 {
		delete(r.rooms, roomID)
		return nil
	}

	return membersOf(room)
}

// LeaveAll убирает соединение из всех комнат. Возвращает оставшихся
// участников по каждой комнате, где соединение состояло.
func (r *Registry) LeaveAll(clientID uuid.UUID) map[uuid.UUID][]Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[uuid.UUID][]Member)

	for roomID, room := range r.rooms {
		if _, ok := room[clientID]; !ok {
			continue
		}

		delete(room, clientID)

		if len(room) == 0 {
			delete(r.rooms, roomID)
			result[roomID] = nil
		} else {
			result[roomID] = membersOf(room)
		}
	}

	return result
}

// Members возвращает снимок участников комнаты
func (r *Registry) Members(roomID uuid.UUID) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil
	}

	return membersOf(room)
}

func membersOf(room map[uuid.UUID]Member) []Member {
	members := make([]Member, 0, len(room))
	for _, m := range room {
		members = append(members, m)
	}
	return members
}
