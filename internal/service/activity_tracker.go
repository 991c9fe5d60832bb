package service

import (
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
)

const defaultActivityTTL = 5 * time.Minute

// ActivityTracker keeps the set of currently active agents. Explainer and
// memory are always active; the others activate when a message is routed
// to them and deactivate after a TTL. A re-activation supersedes the
// pending deactivation, so only the latest timer counts.
type ActivityTracker struct {
	mu     sync.Mutex
	active map[agent.Type]struct{}
	timers map[agent.Type]*time.Timer
	ttl    time.Duration
}

// NewActivityTracker creates a tracker with the given deactivation TTL.
// A non-positive ttl falls back to five minutes.
func NewActivityTracker(ttl time.Duration) *ActivityTracker {
	if ttl <= 0 {
		ttl = defaultActivityTTL
	}
	return &ActivityTracker{
		active: map[agent.Type]struct{}{
			agent.TypeExplainer: {},
			agent.TypeMemory:    {},
		},
		timers: make(map[agent.Type]*time.Timer),
		ttl:    ttl,
	}
}

// Activate marks the agent active and arms its deactivation timer. Any
// previously armed timer for the same agent is discarded.
func (t *ActivityTracker) Activate(agentType agent.Type) {
	if !agentType.Valid() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.active[agentType] = struct{}{}

	if prev, ok := t.timers[agentType]; ok {
		prev.Stop()
	}

	if alwaysActive(agentType) {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// A newer activation replaced this timer; it no longer speaks
		// for the agent's state.
		if t.timers[agentType] != timer {
			return
		}
		delete(t.active, agentType)
		delete(t.timers, agentType)
	})
	t.timers[agentType] = timer
}

// IsActive reports whether the agent is currently active.
func (t *ActivityTracker) IsActive(agentType agent.Type) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[agentType]
	return ok
}

// Stop cancels all pending deactivation timers.
func (t *ActivityTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for agentType, timer := range t.timers {
		timer.Stop()
		delete(t.timers, agentType)
	}
}

func alwaysActive(agentType agent.Type) bool {
	return agentType == agent.TypeExplainer || agentType == agent.TypeMemory
}
