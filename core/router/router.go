package router

import (
	"context"
	"log/slog"

	"github.com/siherrmann/notegraph/core/search"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
	"github.com/siherrmann/notegraph/store"
)

// Router runs an utterance through the ordered intent chain. Every layer
// either answers or declines; the retrieval layer at the end always
// answers, so Ask never returns an empty response.
type Router struct {
	handlers  []Handler
	retrieval *RetrievalHandler
	log       *slog.Logger
}

// NewRouter creates the intent chain in its fixed order: system commands,
// arithmetic, self-help, chit-chat, then retrieval.
func NewRouter(s *store.Store, engine *search.Engine, config model.SearchConfig, log *slog.Logger) (*Router, error) {
	calculator, err := NewCalculatorHandler()
	if err != nil {
		return nil, helper.NewError("new calculator handler", err)
	}

	return &Router{
		handlers: []Handler{
			NewCommandHandler(),
			calculator,
			NewSelfHelpHandler(),
			NewChitChatHandler(),
		},
		retrieval: NewRetrievalHandler(s, engine, config),
		log:       log,
	}, nil
}

// Ask produces the final answer for one utterance. The first handler that
// answers wins; otherwise the utterance is rewritten with the session's
// short-term memory and handed to retrieval.
func (r *Router) Ask(ctx context.Context, utterance string, session *Session) *model.Response {
	for _, handler := range r.handlers {
		if response := handler.Handle(ctx, utterance, session); response != nil {
			return response
		}
	}

	query := rewriteWithContext(utterance, session)
	if query != utterance {
		r.log.Debug("Rewrote ambiguous follow-up",
			slog.String("utterance", utterance),
			slog.String("query", query))
	}

	return r.retrieval.Handle(ctx, query, session)
}
