package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantType    Type
		wantEmotion Emotion
	}{
		{
			name:        "plain greeting",
			message:     "Hello, how are you?",
			wantType:    TypeGreeting,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "greeting is case insensitive",
			message:     "HEY grandma",
			wantType:    TypeGreeting,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "sadness",
			message:     "I feel so sad today",
			wantType:    TypeEmotional,
			wantEmotion: EmotionSad,
		},
		{
			name:        "sadness wins over worry",
			message:     "I feel so worried and sad",
			wantType:    TypeEmotional,
			wantEmotion: EmotionSad,
		},
		{
			name:        "worry",
			message:     "I'm really anxious about the exam",
			wantType:    TypeEmotional,
			wantEmotion: EmotionWorried,
		},
		{
			name:        "happiness",
			message:     "I got some wonderful news today!",
			wantType:    TypeEmotional,
			wantEmotion: EmotionHappy,
		},
		{
			name:        "question by keyword",
			message:     "should I take the job",
			wantType:    TypeQuestion,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "question by punctuation only",
			message:     "the job offer, yes or no?",
			wantType:    TypeQuestion,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "advice",
			message:     "please give me advice",
			wantType:    TypeAdvice,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "story",
			message:     "tell me a story from the old days",
			wantType:    TypeStory,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "substring does not match whole word rule",
			message:     "the highway was empty",
			wantType:    TypeGeneral,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "fallthrough to general",
			message:     "the weather was fine yesterday",
			wantType:    TypeGeneral,
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "empty message",
			message:     "",
			wantType:    TypeGeneral,
			wantEmotion: EmotionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got.Type != tt.wantType {
				t.Errorf("Classify(%q).Type = %q, want %q", tt.message, got.Type, tt.wantType)
			}
			if got.Emotion != tt.wantEmotion {
				t.Errorf("Classify(%q).Emotion = %q, want %q", tt.message, got.Emotion, tt.wantEmotion)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("I'm scared about tomorrow")
	for i := 0; i < 10; i++ {
		got := Classify("I'm scared about tomorrow")
		if got.Type != first.Type || got.Emotion != first.Emotion {
			t.Fatalf("classification changed between runs: %+v vs %+v", got, first)
		}
	}
}

func TestPoolKey(t *testing.T) {
	tests := []struct {
		name string
		it   Intent
		want string
	}{
		{"emotional splits by emotion", Intent{Type: TypeEmotional, Emotion: EmotionSad}, "emotional_sad"},
		{"greeting keys on type", Intent{Type: TypeGreeting, Emotion: EmotionNeutral}, "greeting"},
		{"general keys on type", Intent{Type: TypeGeneral}, "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.PoolKey(); got != tt.want {
				t.Errorf("PoolKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
