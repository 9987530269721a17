// Package search implements the ranked multi-signal search engine and the
// relevant-sentence snippet extractor.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/siherrmann/notegraph/core/pipeline"
	"github.com/siherrmann/notegraph/core/similarity"
	"github.com/siherrmann/notegraph/model"
)

// Engine scores notes and document chunks against free-text queries
type Engine struct {
	embed  pipeline.EmbedFunc
	config model.SearchConfig
}

// NewEngine creates a new search engine
func NewEngine(embed pipeline.EmbedFunc, config model.SearchConfig) *Engine {
	return &Engine{
		embed:  embed,
		config: config,
	}
}

// Search returns the notes scoring above the inclusion threshold, sorted
// descending by score. A note's score is the sum of up to three independent
// signals: semantic similarity, title boost, and keyword presence. The
// function is pure with respect to its inputs; ties keep the snapshot scan
// order.
func (e *Engine) Search(ctx context.Context, query string, notes []*model.Note) ([]*model.SearchResult, error) {
	queryEmbedding, err := e.embed(query)
	if err != nil {
		// No semantic signal; lexical signals still apply
		queryEmbedding = nil
	}

	lowerQuery := strings.ToLower(query)

	var results []*model.SearchResult
	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		semantic := 0.0
		if len(queryEmbedding) > 0 && note.HasEmbedding() {
			semantic = similarity.Cosine(queryEmbedding, note.Embedding)
		}

		score := semantic
		score += e.titleBoost(lowerQuery, note.Title)
		if lowerQuery != "" && strings.Contains(strings.ToLower(note.Content), lowerQuery) {
			score += e.config.KeywordBoost
		}

		if score > e.config.SearchThreshold {
			results = append(results, &model.SearchResult{
				Note:          note,
				Score:         score,
				SemanticScore: semantic,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// titleBoost applies at most one of the two title signals;
// title-in-query takes priority over query-in-title.
func (e *Engine) titleBoost(lowerQuery, title string) float64 {
	if title == "" || lowerQuery == "" {
		return 0
	}

	lowerTitle := strings.ToLower(title)
	if strings.Contains(lowerQuery, lowerTitle) {
		return e.config.TitleInQuery
	}
	if strings.Contains(lowerTitle, lowerQuery) {
		return e.config.QueryInTitle
	}
	return 0
}

// ScoreChunks finds the best-matching document chunk for a focus-mode query.
// A chunk's score is the maximum, not the sum, of its semantic similarity
// and its keyword score (one step per query word present). Returns nil when
// there are no chunks.
func (e *Engine) ScoreChunks(ctx context.Context, query string, chunks []model.DocumentChunk) (*model.ChunkResult, error) {
	queryEmbedding, err := e.embed(query)
	if err != nil {
		queryEmbedding = nil
	}

	words := tokenizeQuery(query)

	var best *model.ChunkResult
	for i := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk := chunks[i]

		semantic := 0.0
		if len(queryEmbedding) > 0 {
			if chunkEmbedding, err := e.embed(chunk.Content); err == nil {
				semantic = similarity.Cosine(queryEmbedding, chunkEmbedding)
			}
		}

		keyword := 0.0
		lowerContent := strings.ToLower(chunk.Content)
		for _, word := range words {
			if strings.Contains(lowerContent, word) {
				keyword += e.config.ChunkKeywordStep
			}
		}

		score := semantic
		if keyword > score {
			score = keyword
		}

		// Ties keep the first chunk found in document order
		if best == nil || score > best.Score {
			best = &model.ChunkResult{
				Chunk: &chunks[i],
				Score: score,
			}
		}
	}

	return best, nil
}

// Snippet extracts the most relevant passage of content for the query
func (e *Engine) Snippet(content, query string) string {
	return Extract(content, query, e.config)
}
