// Package router classifies user utterances into handling lanes and
// dispatches them through an ordered chain of intent handlers.
package router

import "github.com/siherrmann/notegraph/model"

// Session carries the short-term state of one conversation. It is passed
// explicitly to every ask call so parallel conversations and tests stay
// isolated.
type Session struct {
	// LastContextTopic remembers the most recent successful answer topic
	// and feeds the contextual rewrite of follow-up questions
	LastContextTopic string

	// FocusMode answers queries from the loaded document instead of the
	// note collection
	FocusMode bool

	// Chunks holds the loaded document's paragraph chunks while focus
	// mode is active; they are never persisted
	Chunks []model.DocumentChunk
}

// NewSession creates an empty conversation session in library mode
func NewSession() *Session {
	return &Session{}
}

// LoadDocument enters focus mode with the given document chunks
func (s *Session) LoadDocument(chunks []model.DocumentChunk) {
	s.Chunks = chunks
	s.FocusMode = true
}

// CloseDocument leaves focus mode and drops the chunk set
func (s *Session) CloseDocument() {
	s.Chunks = nil
	s.FocusMode = false
}
