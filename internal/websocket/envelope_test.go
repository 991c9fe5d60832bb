package websocket

import (
	"testing"
	"time"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid user message",
			data: `{"type":"user_message","conversationId":"6f1c1f9a-36a2-4dd0-9f63-6e1a5b2f9c11","content":"Explain gravity"}`,
		},
		{
			name: "valid typing frame without conversation",
			data: `{"type":"typing_start","agentType":"quiz"}`,
		},
		{
			name:    "unknown type",
			data:    `{"type":"subscribe","content":"x"}`,
			wantErr: true,
		},
		{
			name:    "missing type",
			data:    `{"content":"hello"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			data:    `{"type":"user_message"`,
			wantErr: true,
		},
		{
			name:    "bad conversation id",
			data:    `{"type":"user_message","conversationId":"not-a-uuid","content":"x"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := ParseEnvelope([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got envelope %+v", env)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnvelope: %v", err)
			}
			if env.Type == "" {
				t.Error("type not populated")
			}
		})
	}
}

func TestReconnectDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{20, 30 * time.Second},
		{-1, 1 * time.Second},
	}
	for _, tt := range tests {
		if got := ReconnectDelay(tt.attempt); got != tt.want {
			t.Errorf("ReconnectDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestTerminalCloseCode(t *testing.T) {
	for _, code := range []int{1000, 1001} {
		if !TerminalCloseCode(code) {
			t.Errorf("code %d should be terminal", code)
		}
	}
	for _, code := range []int{1006, 1011, 4000} {
		if TerminalCloseCode(code) {
			t.Errorf("code %d should retry", code)
		}
	}
}
