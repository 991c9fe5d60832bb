package websocket

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/dto"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// stubAgents returns a canned reply and records the inputs it saw.
type stubAgents struct {
	reply           *dto.AgentReply
	gotContent      string
	gotConversation uuid.UUID
}

func (s *stubAgents) ProcessMessage(_ context.Context, _ uuid.UUID, conversationId uuid.UUID, content string) *dto.AgentReply {
	s.gotContent = content
	s.gotConversation = conversationId
	return s.reply
}

func (s *stubAgents) GetAgentStatuses() []*dto.AgentStatusResponse { return nil }

var _ service.IAgentService = (*stubAgents)(nil)

func newTestClient(agents service.IAgentService) *Client {
	hub := NewHub(nil, noopLogger{})
	client := &Client{
		Hub:            hub,
		UserID:         uuid.New(),
		ConversationID: uuid.New(),
		Send:           make(chan []byte, 16),
		agents:         agents,
	}
	hub.clients[client.UserID] = []*Client{client}
	return client
}

func drain(t *testing.T, client *Client) []Envelope {
	t.Helper()
	var out []Envelope
	for {
		select {
		case data := <-client.Send:
			var env Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				t.Fatalf("decode frame: %v", err)
			}
			out = append(out, env)
		default:
			return out
		}
	}
}

func TestHandleFrameChoreography(t *testing.T) {
	conversationId := uuid.New()
	agents := &stubAgents{reply: &dto.AgentReply{
		ConversationId: conversationId,
		AgentType:      "quiz",
		Content:        "Here's a quiz on photosynthesis!",
		Metadata:       json.RawMessage(`{"topic":"photosynthesis"}`),
	}}
	client := newTestClient(agents)

	frame, _ := json.Marshal(Envelope{
		Type:           TypeUserMessage,
		ConversationId: &conversationId,
		Content:        "Quiz me on photosynthesis",
	})
	client.handleFrame(frame)

	frames := drain(t, client)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, want := range []string{TypeTypingStart, TypeTypingEnd, TypeAgentResponse} {
		if frames[i].Type != want {
			t.Errorf("frame %d type = %q, want %q", i, frames[i].Type, want)
		}
	}

	response := frames[2]
	if response.AgentType != "quiz" {
		t.Errorf("agentType = %q, want quiz", response.AgentType)
	}
	if response.ConversationId == nil || *response.ConversationId != conversationId {
		t.Error("agent response missing conversation id")
	}
	if len(response.Metadata) == 0 {
		t.Error("agent response dropped metadata")
	}
	if agents.gotContent != "Quiz me on photosynthesis" {
		t.Errorf("pipeline saw content %q", agents.gotContent)
	}
	if agents.gotConversation != conversationId {
		t.Error("pipeline saw wrong conversation")
	}
}

func TestHandleFrameFallsBackToClientConversation(t *testing.T) {
	agents := &stubAgents{reply: &dto.AgentReply{Content: "ok", AgentType: "explainer"}}
	client := newTestClient(agents)

	frame, _ := json.Marshal(Envelope{Type: TypeUserMessage, Content: "Explain gravity"})
	client.handleFrame(frame)

	if agents.gotConversation != client.ConversationID {
		t.Errorf("conversation = %v, want client default %v", agents.gotConversation, client.ConversationID)
	}
}

func TestHandleFrameErrorReplyStaysOnConnection(t *testing.T) {
	agents := &stubAgents{reply: &dto.AgentReply{
		Content: service.ErrorReplyContent,
		IsError: true,
	}}
	client := newTestClient(agents)

	frame, _ := json.Marshal(Envelope{Type: TypeUserMessage, Content: "hello"})
	client.handleFrame(frame)

	frames := drain(t, client)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	if frames[2].Type != TypeError {
		t.Errorf("final frame type = %q, want %q", frames[2].Type, TypeError)
	}
	if frames[2].Content != service.ErrorReplyContent {
		t.Errorf("error content = %q", frames[2].Content)
	}
}

func TestHandleFrameRejectsMalformedFrame(t *testing.T) {
	agents := &stubAgents{}
	client := newTestClient(agents)

	client.handleFrame([]byte(`{"type":`))

	frames := drain(t, client)
	if len(frames) != 1 || frames[0].Type != TypeError {
		t.Fatalf("frames = %+v, want single error envelope", frames)
	}
	if frames[0].Content != "Failed to process message" {
		t.Errorf("error content = %q", frames[0].Content)
	}
	if agents.gotContent != "" {
		t.Error("malformed frame reached the pipeline")
	}
}

func TestHandleFrameIgnoresNonUserMessages(t *testing.T) {
	agents := &stubAgents{}
	client := newTestClient(agents)

	frame, _ := json.Marshal(Envelope{Type: TypeTypingStart})
	client.handleFrame(frame)

	if frames := drain(t, client); len(frames) != 0 {
		t.Errorf("got %d frames for ignored type, want 0", len(frames))
	}
}
