package router

import (
	"context"
	"strings"

	"github.com/siherrmann/notegraph/core/search"
	"github.com/siherrmann/notegraph/model"
	"github.com/siherrmann/notegraph/store"
)

// RetrievalHandler is the terminal layer of the chain. It answers from the
// loaded document in focus mode or from the whole note collection in
// library mode, and always produces a response.
type RetrievalHandler struct {
	store  *store.Store
	search *search.Engine
	config model.SearchConfig
}

// NewRetrievalHandler creates a new retrieval handler
func NewRetrievalHandler(s *store.Store, engine *search.Engine, config model.SearchConfig) *RetrievalHandler {
	return &RetrievalHandler{
		store:  s,
		search: engine,
		config: config,
	}
}

// Handle dispatches to the active retrieval mode
func (h *RetrievalHandler) Handle(ctx context.Context, utterance string, session *Session) *model.Response {
	if session.FocusMode {
		return h.handleFocus(ctx, utterance, session)
	}
	return h.handleLibrary(ctx, utterance, session)
}

// handleFocus scans the loaded document's chunks and answers from the best
// one, reporting its page number
func (h *RetrievalHandler) handleFocus(ctx context.Context, utterance string, session *Session) *model.Response {
	best, err := h.search.ScoreChunks(ctx, utterance, session.Chunks)
	if err != nil || best == nil || best.Score <= h.config.ChunkThreshold {
		return &model.Response{Text: "I couldn't find that in the open document. Try rephrasing, or close it to search all your notes."}
	}

	return &model.Response{
		Text: h.search.Snippet(best.Chunk.Content, utterance),
		Page: best.Chunk.Page,
	}
}

// handleLibrary searches the whole note collection, answers with a snippet
// from the top result, and remembers the matched topic for follow-ups
func (h *RetrievalHandler) handleLibrary(ctx context.Context, utterance string, session *Session) *model.Response {
	results, err := h.search.Search(ctx, utterance, h.store.Snapshot())
	if err != nil || len(results) == 0 {
		return &model.Response{Text: declineMessage(utterance)}
	}

	top := results[0]
	snippet := h.search.Snippet(top.Note.Content, utterance)

	if top.Note.Title != "" {
		session.LastContextTopic = top.Note.Title
	} else {
		session.LastContextTopic = snippet
	}

	citation := top.Note.ID
	return &model.Response{
		Text:     snippet,
		Citation: &citation,
	}
}

// declineMessage varies the not-found phrasing for scheduling queries
func declineMessage(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, topic := range retrievalTopics {
		if strings.Contains(lower, topic) {
			return "I don't see anything about that in your schedule. Maybe add a note about it first?"
		}
	}
	return "I couldn't find anything about that in your notes."
}
