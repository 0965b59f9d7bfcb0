package memory

import (
	"fmt"
	"testing"

	"grams-mcp-be/internal/persona"
	"grams-mcp-be/pkg/store"
)

func TestGetOrCreateDefaults(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.GetOrCreate("s1")
	if session.CurrentPersonality != persona.Default().ID {
		t.Errorf("new session personality = %s, want %s", session.CurrentPersonality, persona.Default().ID)
	}
	if len(session.ConversationHistory) != 0 {
		t.Errorf("new session history length = %d, want 0", len(session.ConversationHistory))
	}
	if session.SessionStarted.IsZero() {
		t.Error("SessionStarted was not set")
	}

	// Second call must return the same session, not a fresh one.
	repo.AddMessage("s1", store.RoleUser, "hello")
	again := repo.GetOrCreate("s1")
	if len(again.ConversationHistory) != 1 {
		t.Errorf("GetOrCreate replaced existing session, history length = %d", len(again.ConversationHistory))
	}
	if !again.SessionStarted.Equal(session.SessionStarted) {
		t.Errorf("SessionStarted changed across calls: %v vs %v", again.SessionStarted, session.SessionStarted)
	}
}

func TestSnapshotIsIsolatedFromLaterMutations(t *testing.T) {
	repo := NewSessionRepository()

	repo.AddMessage("s", store.RoleUser, "first")
	snap := repo.Snapshot("s")

	repo.AddMessage("s", store.RoleAssistant, "second")
	repo.SwitchPersonality("s", persona.CoolGrams)

	if len(snap.ConversationHistory) != 1 {
		t.Errorf("snapshot history length = %d, want 1", len(snap.ConversationHistory))
	}
	if snap.ConversationHistory[0].Content != "first" {
		t.Errorf("snapshot history[0] = %q, want %q", snap.ConversationHistory[0].Content, "first")
	}
	if snap.CurrentPersonality != persona.Default().ID {
		t.Errorf("snapshot personality = %s, later switch leaked in", snap.CurrentPersonality)
	}

	live, _ := repo.Get("s")
	if len(live.ConversationHistory) != 3 {
		t.Errorf("live history length = %d, want 3", len(live.ConversationHistory))
	}
}

func TestSnapshotCreatesMissingSession(t *testing.T) {
	repo := NewSessionRepository()

	snap := repo.Snapshot("fresh")
	if snap.CurrentPersonality != persona.Default().ID {
		t.Errorf("snapshot personality = %s, want default", snap.CurrentPersonality)
	}
	if repo.Count() != 1 {
		t.Errorf("Count = %d, want 1", repo.Count())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewSessionRepository()

	repo.AddMessage("a", store.RoleUser, "first")
	repo.SwitchPersonality("b", persona.CoolGrams)

	a, _ := repo.Get("a")
	b, _ := repo.Get("b")
	if a.CurrentPersonality != persona.Default().ID {
		t.Errorf("session a personality = %s, switch leaked across sessions", a.CurrentPersonality)
	}
	if b.CurrentPersonality != persona.CoolGrams {
		t.Errorf("session b personality = %s, want %s", b.CurrentPersonality, persona.CoolGrams)
	}
	if repo.Count() != 2 {
		t.Errorf("Count = %d, want 2", repo.Count())
	}
}

func TestAddMessageEnforcesHistoryCap(t *testing.T) {
	repo := NewSessionRepository()

	total := store.MaxHistory + 5
	for i := 0; i < total; i++ {
		repo.AddMessage("s", store.RoleUser, fmt.Sprintf("msg %d", i))
	}

	session, ok := repo.Get("s")
	if !ok {
		t.Fatal("session not found")
	}
	if got := len(session.ConversationHistory); got != store.MaxHistory {
		t.Fatalf("history length = %d, want %d", got, store.MaxHistory)
	}

	// The oldest entries are truncated; the retained suffix keeps its order.
	for i, msg := range session.ConversationHistory {
		want := fmt.Sprintf("msg %d", total-store.MaxHistory+i)
		if msg.Content != want {
			t.Errorf("history[%d] = %q, want %q", i, msg.Content, want)
		}
	}
}

func TestSwitchPersonalityRecordsMarker(t *testing.T) {
	repo := NewSessionRepository()

	repo.SwitchPersonality("s", persona.WiseBubbe)

	session, ok := repo.Get("s")
	if !ok {
		t.Fatal("switch did not create the session")
	}
	if session.CurrentPersonality != persona.WiseBubbe {
		t.Errorf("personality = %s, want %s", session.CurrentPersonality, persona.WiseBubbe)
	}
	if len(session.ConversationHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(session.ConversationHistory))
	}
	marker := session.ConversationHistory[0]
	if marker.Role != store.RoleAssistant {
		t.Errorf("marker role = %s, want %s", marker.Role, store.RoleAssistant)
	}
	if marker.Content != "[Switched to wise-bubbe]" {
		t.Errorf("marker content = %q", marker.Content)
	}
}

func TestClearRemovesSession(t *testing.T) {
	repo := NewSessionRepository()

	repo.AddMessage("s", store.RoleUser, "hello")
	repo.Clear("s")

	if _, ok := repo.Get("s"); ok {
		t.Error("session still present after Clear")
	}
	if repo.Count() != 0 {
		t.Errorf("Count = %d, want 0", repo.Count())
	}

	// Next access recreates fresh state.
	session := repo.GetOrCreate("s")
	if len(session.ConversationHistory) != 0 {
		t.Errorf("recreated session history length = %d, want 0", len(session.ConversationHistory))
	}
}

func TestMessagesCarryUniqueIDs(t *testing.T) {
	repo := NewSessionRepository()

	repo.AddMessage("s", store.RoleUser, "one")
	repo.AddMessage("s", store.RoleAssistant, "two")

	session, _ := repo.Get("s")
	if session.ConversationHistory[0].ID == session.ConversationHistory[1].ID {
		t.Error("message ids are not unique")
	}
	if session.ConversationHistory[0].Timestamp.IsZero() {
		t.Error("message timestamp was not set")
	}
}
