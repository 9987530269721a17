package search

import (
	"strings"

	"github.com/siherrmann/notegraph/model"
)

// Extract returns the sentence of content most relevant to the query.
// Sentences are scored by how many query words they contain, with a flat
// bonus when the full query phrase appears verbatim. The first sentence
// with the highest score wins. When nothing matches, the first sentence
// serves as fallback, or the first 100 characters when the content has no
// sentence boundary at all. The result is truncated to the configured
// maximum length.
func Extract(content, query string, config model.SearchConfig) string {
	sentences := splitSentences(content)
	words := tokenizeQuery(query)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	best := ""
	bestScore := 0
	for _, sentence := range sentences {
		lowerSentence := strings.ToLower(sentence)

		score := 0
		for _, word := range words {
			if strings.Contains(lowerSentence, word) {
				score++
			}
		}
		if lowerQuery != "" && strings.Contains(lowerSentence, lowerQuery) {
			score += config.SnippetPhraseHit
		}

		if score > bestScore {
			best = sentence
			bestScore = score
		}
	}

	if bestScore == 0 {
		trimmed := strings.TrimSpace(content)
		if len(sentences) > 0 && sentences[0] != trimmed {
			best = sentences[0]
		} else {
			// No real sentence boundary, fall back to a plain prefix
			best = truncate(trimmed, 100)
		}
	}

	return truncate(best, config.SnippetMaxLen)
}

// splitSentences splits text on sentence-ending punctuation followed by a
// space. Trailing punctuation stays attached to its sentence.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "! ", "!|")
	text = strings.ReplaceAll(text, "? ", "?|")
	text = strings.ReplaceAll(text, ". ", ".|")
	text = strings.ReplaceAll(text, "\n", "|")

	var sentences []string
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// tokenizeQuery lowercases the query and keeps only words long enough to
// carry meaning, dropping stop-word length tokens like "the" and "is".
func tokenizeQuery(query string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) > 3 {
			words = append(words, word)
		}
	}
	return words
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
