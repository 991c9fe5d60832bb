package service

import (
	"testing"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
)

func TestActivityTrackerDefaults(t *testing.T) {
	tracker := NewActivityTracker(time.Minute)
	defer tracker.Stop()

	if !tracker.IsActive(agent.TypeExplainer) {
		t.Error("explainer should start active")
	}
	if !tracker.IsActive(agent.TypeMemory) {
		t.Error("memory should start active")
	}
	for _, at := range []agent.Type{agent.TypeQuiz, agent.TypeChecker, agent.TypeMotivator} {
		if tracker.IsActive(at) {
			t.Errorf("%s should start inactive", at)
		}
	}
}

func TestActivityTrackerActivateAndExpire(t *testing.T) {
	tracker := NewActivityTracker(30 * time.Millisecond)
	defer tracker.Stop()

	tracker.Activate(agent.TypeQuiz)
	if !tracker.IsActive(agent.TypeQuiz) {
		t.Fatal("quiz should be active after Activate")
	}

	deadline := time.Now().Add(time.Second)
	for tracker.IsActive(agent.TypeQuiz) {
		if time.Now().After(deadline) {
			t.Fatal("quiz never deactivated")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestActivityTrackerReactivationSupersedes(t *testing.T) {
	tracker := NewActivityTracker(60 * time.Millisecond)
	defer tracker.Stop()

	tracker.Activate(agent.TypeChecker)
	time.Sleep(40 * time.Millisecond)

	// Re-activate just before the first timer would fire; the fresh TTL
	// must win.
	tracker.Activate(agent.TypeChecker)
	time.Sleep(40 * time.Millisecond)

	if !tracker.IsActive(agent.TypeChecker) {
		t.Error("re-activation should have reset the deactivation timer")
	}
}

func TestActivityTrackerAlwaysActiveAgentsNeverExpire(t *testing.T) {
	tracker := NewActivityTracker(10 * time.Millisecond)
	defer tracker.Stop()

	tracker.Activate(agent.TypeExplainer)
	tracker.Activate(agent.TypeMemory)
	time.Sleep(50 * time.Millisecond)

	if !tracker.IsActive(agent.TypeExplainer) {
		t.Error("explainer must stay active")
	}
	if !tracker.IsActive(agent.TypeMemory) {
		t.Error("memory must stay active")
	}
}

func TestActivityTrackerIgnoresUnknownAgent(t *testing.T) {
	tracker := NewActivityTracker(time.Minute)
	defer tracker.Stop()

	tracker.Activate(agent.Type("oracle"))
	if tracker.IsActive(agent.Type("oracle")) {
		t.Error("unknown agent type must not be tracked")
	}
}
