package notegraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/core/graph"
	"github.com/siherrmann/notegraph/core/linker"
	"github.com/siherrmann/notegraph/core/pipeline"
	"github.com/siherrmann/notegraph/core/router"
	"github.com/siherrmann/notegraph/core/search"
	"github.com/siherrmann/notegraph/database"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
	loadSql "github.com/siherrmann/notegraph/sql"
	"github.com/siherrmann/notegraph/store"
)

// NoteGraph provides a unified interface to the knowledge graph: ingestion
// with auto-linking, ranked search, snippet extraction, graph traversal,
// and the conversational intent router.
type NoteGraph struct {
	DB       *helper.Database
	Notes    *database.NotesDBHandler
	Links    *database.LinksDBHandler
	Store    *store.Store
	Graph    *graph.Traverser
	Pipeline *pipeline.Pipeline // Optional embedding/chunking pipeline
	Linker   *linker.Engine
	Search   *search.Engine
	Router   *router.Router
	// Logging
	config model.SearchConfig
	log    *slog.Logger
}

// NewNoteGraph creates a new NoteGraph backed by Postgres. Previously
// persisted notes and links are loaded into the in-memory collection, so
// search and traversal work over the full graph immediately.
func NewNoteGraph(config *helper.DatabaseConfiguration, embeddingDim int) (*NoteGraph, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("notegraph", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// Create the handlers in the correct order (notes first, links
	// reference them). force=false to not reload if functions already exist.
	notes, err := database.NewNotesDBHandler(db, embeddingDim, false)
	if err != nil {
		return nil, helper.NewError("create notes handler", err)
	}

	links, err := database.NewLinksDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create links handler", err)
	}

	s := store.NewStore(database.NewPersister(notes, links))

	existingNotes, err := notes.SelectAllNotes()
	if err != nil {
		return nil, helper.NewError("load notes", err)
	}
	existingLinks, err := links.SelectAllLinks()
	if err != nil {
		return nil, helper.NewError("load links", err)
	}
	s.Load(existingNotes, existingLinks)

	logger.Info("Loaded persisted graph",
		slog.Int("num_notes", len(existingNotes)),
		slog.Int("num_links", len(existingLinks)))

	return &NoteGraph{
		DB:     db,
		Notes:  notes,
		Links:  links,
		Store:  s,
		Graph:  graph.NewTraverser(s),
		config: model.DefaultSearchConfig(),
		log:    logger,
	}, nil
}

// NewInMemoryNoteGraph creates a NoteGraph without persistence. Everything
// lives in memory for the lifetime of the instance.
func NewInMemoryNoteGraph() *NoteGraph {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelWarn,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	s := store.NewStore(nil)
	return &NoteGraph{
		Store:  s,
		Graph:  graph.NewTraverser(s),
		config: model.DefaultSearchConfig(),
		log:    logger,
	}
}

// Close closes the database connection
func (g *NoteGraph) Close() error {
	if g.DB != nil && g.DB.Instance != nil {
		return g.DB.Instance.Close()
	}
	return nil
}

// SetPipeline wires the embedding/chunking pipeline and builds the engines
// on top of it. The embedder is cached so identical text embeds once per
// session.
func (g *NoteGraph) SetPipeline(p *pipeline.Pipeline) error {
	embed := pipeline.CachedEmbedder(p.Embedder)

	g.Pipeline = p
	g.Linker = linker.NewEngine(g.Store, embed, g.config, g.log)
	g.Search = search.NewEngine(embed, g.config)

	intentRouter, err := router.NewRouter(g.Store, g.Search, g.config, g.log)
	if err != nil {
		return helper.NewError("create router", err)
	}
	g.Router = intentRouter

	return nil
}

// UseDefaultPipeline sets up the default embedding and chunking pipeline.
// This uses DefaultEmbedder with the all-MiniLM-L6-v2 model (384 dimensions)
// and ParagraphChunker for focus-mode documents.
func (g *NoteGraph) UseDefaultPipeline() error {
	embedder, err := pipeline.DefaultEmbedder()
	if err != nil {
		return helper.NewError("create default embedder", err)
	}

	return g.SetPipeline(pipeline.NewPipeline(embedder, pipeline.ParagraphChunker()))
}

// Ingest adds a note to the graph, computes its embedding, and auto-links
// it against every existing note. Returns the created link pairs.
func (g *NoteGraph) Ingest(ctx context.Context, note *model.Note) ([]*model.LinkPair, error) {
	if g.Linker == nil {
		return nil, helper.NewError("ingest", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}

	pairs, err := g.Linker.Ingest(ctx, note)
	if err != nil {
		return nil, err
	}

	g.log.Info("Ingested note",
		slog.String("note_id", note.ID.String()),
		slog.String("title", note.Title),
		slog.Int("num_links", len(pairs)))

	return pairs, nil
}

// CreateNote builds a note from raw captured text and ingests it
func (g *NoteGraph) CreateNote(ctx context.Context, title, content string, itemType model.ItemType) (*model.Note, []*model.LinkPair, error) {
	note := model.NewNote(title, content, itemType)
	pairs, err := g.Ingest(ctx, note)
	if err != nil {
		return nil, nil, err
	}
	return note, pairs, nil
}

// UpdateNoteContent replaces a note's content. The embedding is cleared and
// existing links are left as they are; call Relink to rebuild them.
func (g *NoteGraph) UpdateNoteContent(id uuid.UUID, content string) error {
	return g.Store.UpdateNoteContent(id, content)
}

// Relink re-embeds an edited note and links it against the collection again
func (g *NoteGraph) Relink(ctx context.Context, id uuid.UUID) ([]*model.LinkPair, error) {
	if g.Linker == nil {
		return nil, helper.NewError("relink", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}

	note, ok := g.Store.Note(id)
	if !ok {
		return nil, helper.NewError("relink", fmt.Errorf("note %s not found", id))
	}

	return g.Linker.Ingest(ctx, note)
}

// ManualLink creates a user-requested link pair between two notes
func (g *NoteGraph) ManualLink(sourceID, targetID uuid.UUID, strength float64, reason string) (*model.LinkPair, error) {
	if g.Linker == nil {
		return nil, helper.NewError("manual link", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}
	return g.Linker.ManualLink(sourceID, targetID, strength, reason)
}

// DeleteNote removes a note and all links touching it
func (g *NoteGraph) DeleteNote(id uuid.UUID) error {
	return g.Store.DeleteNote(id)
}

// SearchNotes runs the ranked search over the whole collection
func (g *NoteGraph) SearchNotes(ctx context.Context, query string) ([]*model.SearchResult, error) {
	if g.Search == nil {
		return nil, helper.NewError("search", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}
	return g.Search.Search(ctx, query, g.Store.Snapshot())
}

// Snippet extracts the most relevant passage of a note for the query
func (g *NoteGraph) Snippet(content, query string) string {
	return search.Extract(content, query, g.config)
}

// ShortestPath finds the fewest-hop chain of notes between two notes,
// both endpoints included, or an empty path when they are not connected
func (g *NoteGraph) ShortestPath(startID, endID uuid.UUID) []uuid.UUID {
	return g.Graph.ShortestPath(startID, endID)
}

// NewSession starts a conversation session for Ask
func (g *NoteGraph) NewSession() *router.Session {
	return router.NewSession()
}

// LoadDocument chunks the document's pages and puts the session into focus
// mode, answering subsequent Ask calls from this document only
func (g *NoteGraph) LoadDocument(session *router.Session, pages []string) error {
	if g.Pipeline == nil {
		return helper.NewError("load document", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}

	chunks := g.Pipeline.Chunker(pages)
	session.LoadDocument(chunks)

	g.log.Info("Loaded document into focus mode",
		slog.Int("num_pages", len(pages)),
		slog.Int("num_chunks", len(chunks)))

	return nil
}

// CloseDocument returns the session to library mode
func (g *NoteGraph) CloseDocument(session *router.Session) {
	session.CloseDocument()
}

// Ask answers one utterance through the intent chain: system commands,
// arithmetic, self-help, chit-chat, and finally retrieval from the loaded
// document or the note collection.
func (g *NoteGraph) Ask(ctx context.Context, utterance string, session *router.Session) (*model.Response, error) {
	if g.Router == nil {
		return nil, helper.NewError("ask", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}
	return g.Router.Ask(ctx, utterance, session), nil
}
