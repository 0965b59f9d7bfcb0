package intent

import (
	"regexp"
	"strings"
)

// Type is the coarse intent category driving template pool selection.
type Type string

const (
	TypeGreeting  Type = "greeting"
	TypeQuestion  Type = "question"
	TypeEmotional Type = "emotional"
	TypeAdvice    Type = "advice"
	TypeStory     Type = "story"
	TypeGeneral   Type = "general"
)

// Emotion is the sub-label present only on emotional intents.
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionWorried Emotion = "worried"
	EmotionNeutral Emotion = "neutral"
)

// Intent is computed fresh per request and never persisted.
type Intent struct {
	Type     Type     `json:"type"`
	Emotion  Emotion  `json:"emotion"`
	Keywords []string `json:"keywords"`
}

// Lexicons are matched whole-word against the lowercased input. Rule order is
// part of the observable contract: "I'm worried and sad" resolves to sad
// because the sadness rule runs first.
var (
	greetingRe = regexp.MustCompile(`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`)
	sadRe      = regexp.MustCompile(`\b(sad|depressed|down|unhappy|crying|upset|hurt)\b`)
	worriedRe  = regexp.MustCompile(`\b(worried|anxious|stressed|nervous|scared|afraid)\b`)
	happyRe    = regexp.MustCompile(`\b(happy|excited|great|wonderful|amazing|good news)\b`)
	questionRe = regexp.MustCompile(`\b(what|how|why|when|where|should|could|would|can)\b`)
	adviceRe   = regexp.MustCompile(`\b(advice|help|suggest|recommend|think|do|handle)\b`)
	storyRe    = regexp.MustCompile(`\b(story|tell me about|remember when|used to)\b`)
)

// Classify maps a raw utterance to a coarse intent. Pure function; evaluation
// is first-match-wins over the fixed rule list.
func Classify(message string) Intent {
	m := strings.ToLower(message)

	if greetingRe.MatchString(m) {
		return Intent{Type: TypeGreeting, Emotion: EmotionNeutral, Keywords: []string{"greeting"}}
	}

	if sadRe.MatchString(m) {
		return Intent{Type: TypeEmotional, Emotion: EmotionSad, Keywords: []string{"sadness", "comfort"}}
	}

	if worriedRe.MatchString(m) {
		return Intent{Type: TypeEmotional, Emotion: EmotionWorried, Keywords: []string{"worry", "anxiety", "reassurance"}}
	}

	if happyRe.MatchString(m) {
		return Intent{Type: TypeEmotional, Emotion: EmotionHappy, Keywords: []string{"joy", "celebration"}}
	}

	if questionRe.MatchString(m) || strings.Contains(m, "?") {
		return Intent{Type: TypeQuestion, Emotion: EmotionNeutral, Keywords: []string{"inquiry", "advice"}}
	}

	if adviceRe.MatchString(m) {
		return Intent{Type: TypeAdvice, Emotion: EmotionNeutral, Keywords: []string{"guidance", "wisdom"}}
	}

	if storyRe.MatchString(m) {
		return Intent{Type: TypeStory, Emotion: EmotionNeutral, Keywords: []string{"memory", "story"}}
	}

	return Intent{Type: TypeGeneral, Emotion: EmotionNeutral, Keywords: []string{}}
}

// PoolKey composes the template table key for an intent: emotional intents
// split by emotion, everything else keys on the type directly.
func (i Intent) PoolKey() string {
	if i.Type == TypeEmotional && i.Emotion != "" {
		return string(TypeEmotional) + "_" + string(i.Emotion)
	}
	return string(i.Type)
}
