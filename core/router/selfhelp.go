package router

import (
	"context"
	"strings"

	"github.com/siherrmann/notegraph/model"
)

// questionCues gate the self-help layer so topic keywords inside ordinary
// retrieval queries do not trigger canned explanations
var questionCues = []string{"how", "what", "help"}

// helpTopics maps app feature keywords to canned explanatory replies.
// Order matters, the first matching keyword answers.
var helpTopics = []struct {
	keyword string
	reply   string
}{
	{"link", "Notes are linked automatically. When you save a note I compare it to everything you already have and connect the ones that talk about the same thing."},
	{"search", "Just type what you are looking for. I combine the meaning of your words with title and keyword matches to rank your notes."},
	{"focus", "Open a document to enter focus mode. While it is open I answer questions from that document only, with the page number of the answer."},
	{"graph", "The graph view shows how your notes relate. Tap two notes to see the chain of connections between them."},
}

// SelfHelpHandler answers questions about the app itself with canned text
type SelfHelpHandler struct{}

// NewSelfHelpHandler creates a new self-help handler
func NewSelfHelpHandler() *SelfHelpHandler {
	return &SelfHelpHandler{}
}

// Handle replies when the utterance contains both a question cue and a
// known feature keyword; everything else declines.
func (h *SelfHelpHandler) Handle(ctx context.Context, utterance string, session *Session) *model.Response {
	lower := strings.ToLower(utterance)

	cued := false
	for _, cue := range questionCues {
		if strings.Contains(lower, cue) {
			cued = true
			break
		}
	}
	if !cued {
		return nil
	}

	for _, topic := range helpTopics {
		if strings.Contains(lower, topic.keyword) {
			return &model.Response{Text: topic.reply}
		}
	}
	return nil
}
