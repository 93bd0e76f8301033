package chat

import (
	"testing"

	"github.com/google/uuid"
)

func member(name string) Member {
	return Member{
		ClientID:    uuid.New(),
		UserID:      uuid.New(),
		DisplayName: name,
	}
}

func TestRegistryJoinReturnsCurrentMembers(t *testing.T) {
	registry := NewRegistry()
	room := uuid.New()
	alice := member("alice")
	bob := member("bob")

	members := registry.Join(room, alice)
	if len(members) != 1 || members[0].ClientID != alice.ClientID {
		t.Fatalf("expected [alice], got %+v", members)
	}

	members = registry.Join(room, bob)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %+v", members)
	}
}

func TestRegistryJoinIsIdempotentPerConnection(t *testing.T) {
	registry := NewRegistry()
	room := uuid.New()
	alice := member("alice")

	registry.Join(room, alice)
	members := registry.Join(room, alice)
	if len(members) != 1 {
		t.Fatalf("repeated join of one connection must keep one entry, got %+v", members)
	}
}

func TestRegistrySameUserTwoConnections(t *testing.T) {
	registry := NewRegistry()
	room := uuid.New()
	userID := uuid.New()
	tab1 := Member{ClientID: uuid.New(), UserID: userID, DisplayName: "alice"}
	tab2 := Member{ClientID: uuid.New(), UserID: userID, DisplayName: "alice"}

	registry.Join(room, tab1)
	members := registry.Join(room, tab2)
	// Каждая вкладка считается отдельным участником
	if len(members) != 2 {
		t.Fatalf("expected 2 member entries for two tabs, got %+v", members)
	}
}

func TestRegistryLeaveRemovesAndDeletesEmptyRoom(t *testing.T) {
	registry := NewRegistry()
	room := uuid.New()
	alice := member("alice")
	bob := member("bob")
	registry.Join(room, alice)
	registry.Join(room, bob)

	remaining := registry.Leave(room, alice.ClientID)
	if len(remaining) != 1 || remaining[0].ClientID != bob.ClientID {
		t.Fatalf("expected [bob] remaining, got %+v", remaining)
	}

	remaining = registry.Leave(room, bob.ClientID)
	if remaining != nil {
		t.Fatalf("expected empty room, got %+v", remaining)
	}
	if got := registry.Members(room); got != nil {
		t.Fatalf("empty room must be deleted from the registry, got %+v", got)
	}
}

func TestRegistryLeaveUnknownRoom(t *testing.T) {
	registry := NewRegistry()

	if remaining := registry.Leave(uuid.New(), uuid.New()); remaining != nil {
		t.Fatalf("leave of unknown room must return nil, got %+v", remaining)
	}
}

func TestRegistryLeaveAll(t *testing.T) {
	registry := NewRegistry()
	alice := member("alice")
	bob := member("bob")
	roomA := uuid.New()
	roomB := uuid.New()
	roomC := uuid.New()

	registry.Join(roomA, alice)
	registry.Join(roomB, alice)
	registry.Join(roomC, alice)
	registry.Join(roomA, bob)

	result := registry.LeaveAll(alice.ClientID)
	if len(result) != 3 {
		t.Fatalf("expected results for 3 rooms, got %v", result)
	}
	if remaining := result[roomA]; len(remaining) != 1 || remaining[0].ClientID != bob.ClientID {
		t.Fatalf("expected [bob] remaining in roomA, got %+v", remaining)
	}
	if result[roomB] != nil || result[roomC] != nil {
		t.Fatalf("rooms B and C must be reported empty, got %v", result)
	}

	// Реестр больше не знает это соединение ни в одной комнате
	for _, room := range []uuid.UUID{roomA, roomB, roomC} {
		for _, m := range registry.Members(room) {
			if m.ClientID == alice.ClientID {
				t.Fatalf("alice still present in room %s", room)
			}
		}
	}

	if again := registry.LeaveAll(alice.ClientID); len(again) != 0 {
		t.Fatalf("second LeaveAll must be a no-op, got %v", again)
	}
}

func TestRegistryMembersSnapshotIsolated(t *testing.T) {
	registry := NewRegistry()
	room := uuid.New()
	registry.Join(room, member("alice"))

	snapshot := registry.Members(room)
	snapshot[0].DisplayName = "mallory"

	if got := registry.Members(room); got[0].DisplayName != "alice" {
		t.Fatal("mutating a snapshot must not affect the registry")
	}
}
