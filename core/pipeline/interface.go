package pipeline

import "github.com/siherrmann/notegraph/model"

// EmbedFunc is a function that generates embeddings for text.
// Returning an error means "vector unavailable"; callers degrade to
// lexical-only scoring instead of failing.
type EmbedFunc func(text string) ([]float32, error)

// ChunkFunc splits a loaded document's page texts into in-memory chunks
// for a focus session
type ChunkFunc func(pages []string) []model.DocumentChunk

// Pipeline combines the embedding and document chunking functions
type Pipeline struct {
	Embedder EmbedFunc
	Chunker  ChunkFunc
}

// NewPipeline creates a new processing pipeline
func NewPipeline(embedder EmbedFunc, chunker ChunkFunc) *Pipeline {
	return &Pipeline{
		Embedder: embedder,
		Chunker:  chunker,
	}
}
