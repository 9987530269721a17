// Package linker implements the auto-linking engine: on ingestion a note is
// embedded and compared against every existing note, and sufficiently
// similar pairs get mirrored links.
package linker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/core/pipeline"
	"github.com/siherrmann/notegraph/core/similarity"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
	"github.com/siherrmann/notegraph/store"
)

// Engine links ingested notes into the graph
type Engine struct {
	store  *store.Store
	embed  pipeline.EmbedFunc
	config model.SearchConfig
	log    *slog.Logger

	// mu serializes ingestion so two concurrent ingests can never create
	// redundant mirrored pairs for the same note pair
	mu sync.Mutex
}

// NewEngine creates a new auto-linking engine
func NewEngine(s *store.Store, embed pipeline.EmbedFunc, config model.SearchConfig, log *slog.Logger) *Engine {
	return &Engine{
		store:  s,
		embed:  embed,
		config: config,
		log:    log,
	}
}

// Ingest adds the note to the collection, computes its embedding, and
// creates mirrored link pairs to every existing note whose similarity
// exceeds the link threshold. If the embedding provider cannot produce a
// vector, linking is skipped entirely and the note stays embedding-less;
// that is not an error.
func (e *Engine) Ingest(ctx context.Context, note *model.Note) ([]*model.LinkPair, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.AddNote(note); err != nil {
		return nil, helper.NewError("add note", err)
	}

	embedding, err := e.embed(note.Content)
	if err != nil || len(embedding) == 0 {
		e.log.Warn("Embedding unavailable, skipping linking",
			slog.String("note_id", note.ID.String()))
		return nil, nil
	}

	if err := e.store.SetEmbedding(note.ID, embedding); err != nil {
		return nil, helper.NewError("set embedding", err)
	}

	var pairs []*model.LinkPair
	for _, other := range e.store.Snapshot() {
		if err := ctx.Err(); err != nil {
			return pairs, err
		}
		if other.ID == note.ID || !other.HasEmbedding() {
			continue
		}

		score := similarity.Cosine(embedding, other.Embedding)
		if score <= e.config.LinkThreshold {
			continue
		}
		if e.store.LinkExists(note.ID, other.ID) {
			continue
		}

		reason := fmt.Sprintf("semantic match (%.0f%%)", score*100)
		pair := model.NewLinkPair(note.ID, other.ID, score, reason)
		if err := e.store.AddLinkPair(pair); err != nil {
			return pairs, helper.NewError("add link pair", err)
		}
		pairs = append(pairs, pair)
	}

	e.log.Info("Linked note",
		slog.String("note_id", note.ID.String()),
		slog.Int("num_links", len(pairs)))

	return pairs, nil
}

// ManualLink creates a user-requested link pair between two notes.
// Manual links go through the same store discipline as automatic ones.
func (e *Engine) ManualLink(sourceID, targetID uuid.UUID, strength float64, reason string) (*model.LinkPair, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.Has(sourceID) || !e.store.Has(targetID) {
		return nil, helper.NewError("manual link", fmt.Errorf("both notes must exist"))
	}
	if reason == "" {
		reason = "manually linked"
	}

	pair := model.NewLinkPair(sourceID, targetID, strength, reason)
	if err := e.store.AddLinkPair(pair); err != nil {
		return nil, helper.NewError("add link pair", err)
	}

	return pair, nil
}
