package persona

// ID identifies one of the three fixed grandma personalities.
type ID string

const (
	SweetNana ID = "sweet-nana"
	WiseBubbe ID = "wise-bubbe"
	CoolGrams ID = "cool-grams"
)

// Characteristics describes the lexicon a personality speaks with.
// The rule-based generator does not consume these directly; they are part of
// the contract for a real generative backend.
type Characteristics struct {
	Tone         []string `json:"tone"`
	Vocabulary   []string `json:"vocabulary"`
	Topics       []string `json:"topics"`
	Catchphrases []string `json:"catchphrases"`
}

// VoiceConfig holds optional ElevenLabs voice parameters per personality.
type VoiceConfig struct {
	ElevenLabsVoiceID string  `json:"eleven_labs_voice_id,omitempty"`
	Pitch             float64 `json:"pitch,omitempty"`
	Speed             float64 `json:"speed,omitempty"`
}

// Personality is an immutable identity record for one grandma persona.
type Personality struct {
	ID              ID              `json:"id"`
	Name            string          `json:"name"`
	DisplayName     string          `json:"display_name"`
	Avatar          string          `json:"avatar"`
	SystemPrompt    string          `json:"-"`
	Characteristics Characteristics `json:"characteristics"`
	Voice           *VoiceConfig    `json:"voice,omitempty"`
}
