package router

import "strings"

// pronouns that make a follow-up question ambiguous without context
var pronouns = map[string]bool{
	"it":   true,
	"that": true,
	"he":   true,
	"she":  true,
}

// rewriteWithContext appends the session's short-term memory to an
// ambiguous follow-up question so retrieval has enough to work with. An
// utterance counts as ambiguous when it contains a pronoun or is very
// short. Without memory the utterance passes through unchanged.
func rewriteWithContext(utterance string, session *Session) string {
	if session.LastContextTopic == "" {
		return utterance
	}

	words := strings.Fields(strings.ToLower(utterance))
	ambiguous := len(words) <= 3
	for _, word := range words {
		if pronouns[strings.Trim(word, ".,!?")] {
			ambiguous = true
			break
		}
	}

	if !ambiguous {
		return utterance
	}
	return utterance + " " + session.LastContextTopic
}
