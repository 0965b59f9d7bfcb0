package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"grams-mcp-be/internal/persona"
	"grams-mcp-be/pkg/store"
)

// SessionRepository owns all per-conversation state. Entries are created
// lazily and live for the process lifetime; there is no TTL in this design.
// Mutations are serialized by a repository-level mutex because go-cache only
// makes single get/set calls atomic, not read-modify-write sequences.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// GetOrCreate returns the existing session or creates a fresh one with the
// default personality. Never fails.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreateLocked(sessionID)
}

func (r *SessionRepository) getOrCreateLocked(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}
	session := &store.Session{
		CurrentPersonality:  persona.Default().ID,
		ConversationHistory: []store.Message{},
		SessionStarted:      time.Now(),
	}
	r.cache.Set(sessionID, session, cache.NoExpiration)
	return session
}

// SwitchPersonality ensures the session exists, sets the active personality
// and records a synthetic assistant marker in history. The marker counts
// toward the history cap like any other message.
func (r *SessionRepository) SwitchPersonality(sessionID string, newID persona.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.getOrCreateLocked(sessionID)
	session.CurrentPersonality = newID
	r.appendLocked(session, store.RoleAssistant, fmt.Sprintf("[Switched to %s]", newID))
}

// AddMessage ensures the session exists and appends one turn, then enforces
// the history cap by keeping only the most recent entries.
func (r *SessionRepository) AddMessage(sessionID, role, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.getOrCreateLocked(sessionID)
	r.appendLocked(session, role, content)
}

func (r *SessionRepository) appendLocked(session *store.Session, role, content string) {
	session.ConversationHistory = append(session.ConversationHistory, store.Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})

	if n := len(session.ConversationHistory); n > store.MaxHistory {
		session.ConversationHistory = session.ConversationHistory[n-store.MaxHistory:]
	}
}

// Snapshot ensures the session exists and returns a copy taken under the
// lock. The history slice is copied, so the caller may read it while other
// goroutines keep appending to the live session.
func (r *SessionRepository) Snapshot(sessionID string) store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.getOrCreateLocked(sessionID)
	cp := *session
	cp.ConversationHistory = append([]store.Message(nil), session.ConversationHistory...)
	return cp
}

// Get is a read-only lookup. Absence is an expected steady state, not an
// error.
func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Clear removes the session entirely; the next access recreates fresh state.
func (r *SessionRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionID)
}

// Count returns the number of live sessions, for observability.
func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.ItemCount()
}
