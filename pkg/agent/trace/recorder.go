// Package trace keeps a bounded in-memory record of agent dispatches for
// the debugging endpoint.
package trace

import (
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"

	"github.com/google/uuid"
)

// Entry records one routed message.
type Entry struct {
	Id             uuid.UUID  `json:"id"`
	ConversationId uuid.UUID  `json:"conversationId"`
	UserId         uuid.UUID  `json:"userId"`
	Input          string     `json:"input"`
	AgentType      agent.Type `json:"agentType"`
	DurationMs     int64      `json:"durationMs"`
	Error          string     `json:"error,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Recorder is a fixed-capacity ring of dispatch entries. The zero value is
// not usable; construct with NewRecorder.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
}

const defaultLimit = 100

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Recorder{limit: limit}
}

// Record appends an entry, evicting the oldest once the limit is reached.
func (r *Recorder) Record(e Entry) {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
}

// List returns recorded entries newest first.
func (r *Recorder) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out
}
