package chat

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestQueueFullReturnsError(t *testing.T) {
	client := &Client{ID: uuid.New(), Send: make(chan []byte, 1)}

	if err := client.queue([]byte("first")); err != nil {
		t.Fatalf("queue with free capacity: %v", err)
	}
	if err := client.queue([]byte("second")); !errors.Is(err, ErrClientQueueFull) {
		t.Fatalf("expected ErrClientQueueFull, got %v", err)
	}

	// Первое событие осталось в очереди, второе отброшено
	if got := <-client.Send; string(got) != "first" {
		t.Fatalf("expected queued event to survive, got %q", got)
	}
	select {
	case got := <-client.Send:
		t.Fatalf("dropped event must not be queued, got %q", got)
	default:
	}
}

func TestHubRegisterUnregisterAfterStop(t *testing.T) {
	hub := NewHub(NewRegistry())
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		hub.Unregister(&Client{ID: uuid.New(), Send: make(chan []byte, 1)})
		hub.Register(&Client{ID: uuid.New(), Send: make(chan []byte, 1)})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("register/unregister must not block after hub stop")
	}
}
