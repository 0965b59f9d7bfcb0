package service

import (
	"context"
	"errors"

	"grams-mcp-be/internal/config"
	"grams-mcp-be/internal/persona"
	"grams-mcp-be/internal/pkg/logger"
)

// ErrVoiceNotImplemented marks the voice hook as a scaffold. Synthesis is
// intentionally out of scope for now.
var ErrVoiceNotImplemented = errors.New("voice generation not implemented")

type IVoiceService interface {
	GenerateVoice(ctx context.Context, text string, p persona.ID) (string, error)
}

// voiceService is the ElevenLabs integration point. Without an API key the
// feature is disabled; with one it is still a stub until synthesis lands.
type voiceService struct {
	apiKey   string
	voiceIDs config.VoiceConfig
	logger   logger.ILogger
}

func NewVoiceService(apiKey string, voiceIDs config.VoiceConfig, log logger.ILogger) IVoiceService {
	if apiKey == "" {
		log.Info("voice_service", "ElevenLabs API key not configured - voice features disabled", nil)
	}
	return &voiceService{
		apiKey:   apiKey,
		voiceIDs: voiceIDs,
		logger:   log,
	}
}

func (s *voiceService) GenerateVoice(_ context.Context, _ string, p persona.ID) (string, error) {
	s.logger.Warn("voice_service", "voice generation not yet implemented", map[string]interface{}{
		"personality": string(p),
		"voice_id":    s.voiceIDFor(p),
	})
	return "", ErrVoiceNotImplemented
}

func (s *voiceService) voiceIDFor(p persona.ID) string {
	switch p {
	case persona.SweetNana:
		return s.voiceIDs.NanaVoiceID
	case persona.WiseBubbe:
		return s.voiceIDs.BubbeVoiceID
	case persona.CoolGrams:
		return s.voiceIDs.GramsVoiceID
	default:
		return ""
	}
}
