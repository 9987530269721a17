package model

import "github.com/google/uuid"

// ChatRole identifies the author of a chat turn
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatTurn is one exchange in a conversation view.
// Turns exist only for the life of the view and are never persisted.
type ChatTurn struct {
	Role     ChatRole   `json:"role"`
	Text     string     `json:"text"`
	Citation *uuid.UUID `json:"citation,omitempty"`
}

// ActionType identifies a structured action emitted by the command layer
type ActionType string

const (
	ActionCreateNote ActionType = "create_note"
)

// PendingAction is a structured action the UI should carry out.
// The router only emits it; it never touches the knowledge base itself.
type PendingAction struct {
	Type  ActionType `json:"type"`
	Title string     `json:"title"`
}

// Response is the router's final answer for one ask call
type Response struct {
	Text     string         `json:"text"`
	Citation *uuid.UUID     `json:"citation,omitempty"` // matched note, if any
	Page     int            `json:"page,omitempty"`     // source page in focus mode
	Action   *PendingAction `json:"action,omitempty"`
}
