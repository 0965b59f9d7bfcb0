package store

import (
	"time"

	"github.com/google/uuid"

	"grams-mcp-be/internal/persona"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxHistory caps per-session history; oldest entries are dropped first.
	MaxHistory = 20
)

// Message is one conversation turn. Immutable once created, append-only.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-conversation mutable state: the active personality plus
// a bounded message history. Mutated only by the session repository.
type Session struct {
	CurrentPersonality  persona.ID `json:"current_personality"`
	ConversationHistory []Message  `json:"conversation_history"`
	SessionStarted      time.Time  `json:"session_started"`
}
