package model

import "time"

// Chat roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the state of one requirement-gathering conversation. Turns is
// append-only; the system turn is fixed at initialization. Once Done is set
// ProfileSentence carries the canonical requirement sentence.
type Session struct {
	ID              string        `json:"id"`
	Turns           []ChatMessage `json:"turns"`
	Done            bool          `json:"done"`
	ProfileSentence string        `json:"profile_sentence,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	LastUsed        time.Time     `json:"last_used"`
}
