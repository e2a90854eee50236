package models

import "time"

// ChatRole identifies the author of a transcript message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleSystem    ChatRole = "system"
)

// ActionType tags a chat action the UI can trigger. Actions are plain tags
// resolved by the orchestrator, never embedded callbacks, so a transcript
// serializes cleanly.
type ActionType string

const (
	ActionShowInsights ActionType = "show_insights"
	ActionShowOptions  ActionType = "show_options"
	ActionContinue     ActionType = "continue"
)

// ChatAction is a single button offered alongside an assistant message.
type ChatAction struct {
	Label string     `json:"label"`
	Type  ActionType `json:"type"`
}

// ChatMessage is one immutable transcript entry. The transcript is
// append-only and ordered by creation time.
type ChatMessage struct {
	ID        string       `json:"id"`
	Role      ChatRole     `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	Actions   []ChatAction `json:"actions,omitempty"`
}
