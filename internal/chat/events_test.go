package chat

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeEventEnvelope(t *testing.T) {
	room := uuid.New()
	data, err := encodeEvent(TypeUserTyping, UserTypingPayload{
		UserID:      room,
		DisplayName: "alice",
		IsTyping:    true,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if evt.Type != TypeUserTyping {
		t.Fatalf("expected type user_typing, got %q", evt.Type)
	}

	var payload UserTypingPayload
	if err := json.Unmarshal(evt.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.DisplayName != "alice" || !payload.IsTyping {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestEncodeEventWithoutPayload(t *testing.T) {
	data, err := encodeEvent(TypeError, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if evt.Data != nil {
		t.Fatalf("expected omitted data, got %s", evt.Data)
	}
}

func TestClientEventPayloadNames(t *testing.T) {
	// Имена полей — контракт с клиентом
	raw := []byte(`{"type":"send_message","data":{"roomId":"6a9f8f8e-1111-4222-8333-444455556666","body":"hi"}}`)

	var evt Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var payload SendMessagePayload
	if err := json.Unmarshal(evt.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Body != "hi" || payload.RoomID == uuid.Nil {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}
