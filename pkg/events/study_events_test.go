package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEventRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	original := ProgressUpdated{
		UserId:     uuid.New(),
		Topic:      "photosynthesis",
		Correct:    true,
		OccurredAt: now,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	got, ok := decoded.(ProgressUpdated)
	if !ok {
		t.Fatalf("decoded type = %T, want ProgressUpdated", decoded)
	}
	if got != original {
		t.Errorf("decoded = %+v, want %+v", got, original)
	}
}

func TestUnmarshalDispatchesOnType(t *testing.T) {
	activated := AgentActivated{
		UserId:         uuid.New(),
		ConversationId: uuid.New(),
		Agent:          "quiz",
		OccurredAt:     time.Now(),
	}
	data, err := Marshal(activated)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.EventType() != TypeAgentActivated {
		t.Errorf("event type = %q, want %q", decoded.EventType(), TypeAgentActivated)
	}
}

func TestUnmarshalRejectsUnknownType(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"type":"SOMETHING_ELSE","payload":{}}`)); err == nil {
		t.Error("expected error for unknown event type")
	}
	if _, err := Unmarshal([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}
