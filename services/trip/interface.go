package trip

import (
	"context"
	"sync"

	"wayfare/models"
	"wayfare/services/availability"
	"wayfare/services/intelligence"
	"wayfare/services/options"
)

// Service is the conversation orchestrator: it owns the per-session
// preference state, transcript and availability snapshot, and advances the
// session state machine on every user message or action.
type Service interface {
	// ProcessMessage handles one user message: completion and extraction
	// run concurrently, the delta is merged, and a quick search may be
	// triggered. The returned session reflects the post-turn state; its
	// last transcript entry is the assistant reply.
	ProcessMessage(ctx context.Context, sessionID, text string) (*models.TripSession, error)

	// TriggerAction resolves a tagged chat action (show insights, show
	// travel options) against the current session.
	TriggerAction(ctx context.Context, sessionID string, action models.ActionType) (*models.TripSession, error)

	// Transcript returns the session's append-only message history.
	Transcript(ctx context.Context, sessionID string) ([]models.ChatMessage, error)

	// Reset discards the session entirely.
	Reset(ctx context.Context, sessionID string) error
}

// DefaultService implements Service.
type DefaultService struct {
	Store        *RedisSessionStore
	AI           intelligence.Service
	Availability availability.Service
	Options      options.Service

	locks sessionLocks
}

// sessionLocks hands out one mutex per session so concurrent requests for
// the same session serialize, preserving the at-most-one-quick-search rule
// under true parallelism.
type sessionLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *sessionLocks) get(sessionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	lock, ok := l.m[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.m[sessionID] = lock
	}
	return lock
}
