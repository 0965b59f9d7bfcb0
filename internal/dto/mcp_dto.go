package dto

import "time"

// ChatWithGramsRequest is the argument payload for the chat_with_grams tool.
type ChatWithGramsRequest struct {
	Message string `json:"message" validate:"required"`
}

// SwitchGrandmaRequest is the argument payload for the switch_grandma tool.
// The personality must be one of the three enumerated ids; anything else is a
// validation failure, never coerced.
type SwitchGrandmaRequest struct {
	Personality string `json:"personality" validate:"required,oneof=sweet-nana wise-bubbe cool-grams"`
}

// UIMetadata is the side-channel payload accompanying every tool reply,
// intended for the widget presentation layer.
type UIMetadata struct {
	PersonalityID   string `json:"personalityId"`
	PersonalityName string `json:"personalityName"`
	Avatar          string `json:"avatar"`
	Message         string `json:"message"`
	SwitchedTo      bool   `json:"switchedTo,omitempty"`
}

// ToolReply is what the chat service hands back to the dispatcher: the reply
// text plus the UI side channel.
type ToolReply struct {
	Text string
	UI   UIMetadata
}

// ChatEventMessage is published on the chat-events topic after each
// successful tool call.
type ChatEventMessage struct {
	SessionID     string    `json:"session_id"`
	Tool          string    `json:"tool"`
	PersonalityID string    `json:"personality_id"`
	IntentType    string    `json:"intent_type,omitempty"`
	At            time.Time `json:"at"`
}
