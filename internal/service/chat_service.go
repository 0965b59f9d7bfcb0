package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"grams-mcp-be/internal/dto"
	"grams-mcp-be/internal/persona"
	"grams-mcp-be/internal/pkg/logger"
	"grams-mcp-be/internal/repository/memory"
	"grams-mcp-be/pkg/intent"
	"grams-mcp-be/pkg/llm"
	"grams-mcp-be/pkg/response"
	"grams-mcp-be/pkg/store"
)

// IChatService defines the two stateful chat operations the tool boundary
// dispatches to.
type IChatService interface {
	Chat(ctx context.Context, sessionID, message string) (*dto.ToolReply, error)
	SwitchPersonality(ctx context.Context, sessionID string, target persona.ID) (*dto.ToolReply, error)
	SessionCount() int
}

// Fixed per-personality greeting returned by the switch operation. Not drawn
// from the random pool.
var switchGreetings = map[persona.ID]string{
	persona.SweetNana: "Hello sweetie! It's Nana now. How can I help you, dear?",
	persona.WiseBubbe: "Shayna! Bubbe is here. What's on your mind, bubeleh?",
	persona.CoolGrams: "Hey kiddo! Cool Grams reporting for duty! What's up?",
}

// chatService owns the orchestration seam: session state on one side, reply
// generation on the other. A real generative provider, when configured,
// replaces the classify+select steps without changing the session contract.
type chatService struct {
	sessionRepo *memory.SessionRepository
	llmProvider llm.LLMProvider // nil means template-only mode
	publisher   IPublisherService
	logger      logger.ILogger
	rng         *rand.Rand

	// One generator per session, rebuilt on personality switch. Rebuilding
	// also clears repeat-avoidance memory.
	genMu      sync.Mutex
	generators map[string]*response.Generator
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
	rng *rand.Rand,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		llmProvider: llmProvider,
		publisher:   publisher,
		logger:      log,
		rng:         rng,
		generators:  make(map[string]*response.Generator),
	}
}

func (s *chatService) Chat(ctx context.Context, sessionID, message string) (*dto.ToolReply, error) {
	s.sessionRepo.AddMessage(sessionID, store.RoleUser, message)

	// Work from a locked copy: the live session keeps mutating under
	// concurrent calls, the snapshot does not.
	session := s.sessionRepo.Snapshot(sessionID)

	it := intent.Classify(message)

	p, err := persona.GetByID(session.CurrentPersonality)
	if err != nil {
		return nil, err
	}
	gen := s.generatorFor(sessionID, p)

	reply := s.reply(ctx, session, p, gen, it)

	s.sessionRepo.AddMessage(sessionID, store.RoleAssistant, reply)

	s.logger.Info("chat_service", "chat reply generated", map[string]interface{}{
		"session_id":  sessionID,
		"personality": string(p.ID),
		"intent":      string(it.Type),
	})

	s.publishEvent(ctx, sessionID, "chat_with_grams", p.ID, it)

	return &dto.ToolReply{
		Text: reply,
		UI: dto.UIMetadata{
			PersonalityID:   string(p.ID),
			PersonalityName: p.Name,
			Avatar:          p.Avatar,
			Message:         reply,
		},
	}, nil
}

// reply produces the assistant text from a session snapshot. The provider
// path is awaited before any history update so per-session ordering holds;
// any provider failure falls back to the template path and is never surfaced
// to the caller.
func (s *chatService) reply(
	ctx context.Context,
	session store.Session,
	p persona.Personality,
	gen *response.Generator,
	it intent.Intent,
) string {
	if s.llmProvider == nil {
		return s.selectLine(gen, it)
	}

	history := make([]llm.Message, 0, len(session.ConversationHistory))
	for _, msg := range session.ConversationHistory {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	text, err := s.llmProvider.Chat(ctx, history, llm.WithSystem(p.SystemPrompt))
	if err != nil {
		s.logger.Warn("chat_service", "provider failed, falling back to templates", map[string]interface{}{
			"error": err.Error(),
		})
		return s.selectLine(gen, it)
	}
	return text
}

// selectLine serializes template selection: generators share one RNG and
// mutate repeat-avoidance state, so draws must not interleave.
func (s *chatService) selectLine(gen *response.Generator, it intent.Intent) string {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return gen.Select(it)
}

func (s *chatService) SwitchPersonality(ctx context.Context, sessionID string, target persona.ID) (*dto.ToolReply, error) {
	// Unknown ids must not mutate session state.
	p, err := persona.GetByID(target)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.SwitchPersonality(sessionID, target)

	// Reconstruct the generator for the new personality; this also forgets
	// repeat-avoidance memory.
	s.genMu.Lock()
	s.generators[sessionID] = response.NewGenerator(p, s.rng)
	s.genMu.Unlock()

	greeting, ok := switchGreetings[target]
	if !ok {
		return nil, fmt.Errorf("no greeting for personality: %s", target)
	}

	s.logger.Info("chat_service", "personality switched", map[string]interface{}{
		"session_id":  sessionID,
		"personality": string(target),
	})

	s.publishEvent(ctx, sessionID, "switch_grandma", target, intent.Intent{})

	return &dto.ToolReply{
		Text: greeting,
		UI: dto.UIMetadata{
			PersonalityID:   string(p.ID),
			PersonalityName: p.Name,
			Avatar:          p.Avatar,
			Message:         greeting,
			SwitchedTo:      true,
		},
	}, nil
}

func (s *chatService) SessionCount() int {
	return s.sessionRepo.Count()
}

func (s *chatService) generatorFor(sessionID string, p persona.Personality) *response.Generator {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	gen, ok := s.generators[sessionID]
	if !ok || gen.Personality().ID != p.ID {
		gen = response.NewGenerator(p, s.rng)
		s.generators[sessionID] = gen
	}
	return gen
}

func (s *chatService) publishEvent(ctx context.Context, sessionID, tool string, pid persona.ID, it intent.Intent) {
	if s.publisher == nil {
		return
	}
	evt := &dto.ChatEventMessage{
		SessionID:     sessionID,
		Tool:          tool,
		PersonalityID: string(pid),
		IntentType:    string(it.Type),
		At:            time.Now(),
	}
	if err := s.publisher.PublishChatEvent(ctx, evt); err != nil {
		s.logger.Warn("chat_service", "failed to publish chat event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
