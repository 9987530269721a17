package router

import (
	"context"
	"math/rand"
	"strings"

	"github.com/siherrmann/notegraph/model"
)

// retrievalTopics force an utterance through to retrieval even when it
// superficially looks like small talk
var retrievalTopics = []string{"schedule", "meeting", "plan"}

var greetingReplies = []string{
	"Hey! What would you like to know from your notes?",
	"Hi there! Ask me anything about your notes.",
	"Hello! I'm ready when you are.",
}

var jokeReplies = []string{
	"I tried to organize a hide and seek tournament, but good players are hard to find.",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I would tell you a UDP joke, but you might not get it.",
}

// ChitChatHandler answers small talk from a fixed pattern table
type ChitChatHandler struct{}

// NewChitChatHandler creates a new chit-chat handler
func NewChitChatHandler() *ChitChatHandler {
	return &ChitChatHandler{}
}

// Handle matches greeting, identity, joke, and gratitude patterns.
// Utterances mentioning schedules, meetings, or plans always decline so
// they reach the knowledge base instead.
func (h *ChitChatHandler) Handle(ctx context.Context, utterance string, session *Session) *model.Response {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	for _, topic := range retrievalTopics {
		if strings.Contains(lower, topic) {
			return nil
		}
	}

	switch {
	case isGreeting(lower):
		return &model.Response{Text: greetingReplies[rand.Intn(len(greetingReplies))]}
	case strings.Contains(lower, "who are you"), strings.Contains(lower, "your name"):
		return &model.Response{Text: "I'm your notes assistant. I search, link, and explain everything you have saved here."}
	case strings.Contains(lower, "joke"):
		return &model.Response{Text: jokeReplies[rand.Intn(len(jokeReplies))]}
	case strings.Contains(lower, "thank"):
		return &model.Response{Text: "You're welcome!"}
	}

	return nil
}

func isGreeting(lower string) bool {
	for _, greeting := range []string{"hello", "hey"} {
		if strings.HasPrefix(lower, greeting) {
			return true
		}
	}
	return lower == "hi" || strings.HasPrefix(lower, "hi ")
}
