package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/siherrmann/notegraph/model"
)

const createNotePrefix = "create a note called "

// CommandHandler recognizes fixed system commands and turns them into
// pending structured actions without touching the knowledge base.
type CommandHandler struct{}

// NewCommandHandler creates a new system command handler
func NewCommandHandler() *CommandHandler {
	return &CommandHandler{}
}

// Handle matches the create-note command prefix and emits a pending action
// with a canned confirmation. Anything else declines.
func (h *CommandHandler) Handle(ctx context.Context, utterance string, session *Session) *model.Response {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	if !strings.HasPrefix(lower, createNotePrefix) {
		return nil
	}

	title := strings.TrimSpace(strings.TrimSpace(utterance)[len(createNotePrefix):])
	if title == "" {
		return nil
	}

	return &model.Response{
		Text: fmt.Sprintf("Okay, I created a note called \"%v\" for you.", title),
		Action: &model.PendingAction{
			Type:  model.ActionCreateNote,
			Title: title,
		},
	}
}
