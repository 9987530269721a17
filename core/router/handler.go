package router

import (
	"context"

	"github.com/siherrmann/notegraph/model"
)

// Handler is one layer of the intent chain. A handler either produces a
// final response, short-circuiting all later layers, or declines by
// returning nil so the utterance falls through to the next layer. Handlers
// never fail the chain; anything unparseable is a decline, not an error.
type Handler interface {
	Handle(ctx context.Context, utterance string, session *Session) *model.Response
}
