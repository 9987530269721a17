package model

// SearchResult represents a note matched by a ranked search
type SearchResult struct {
	Note          *Note   `json:"note"`
	Score         float64 `json:"score"`          // combined score from all signals
	SemanticScore float64 `json:"semantic_score"` // cosine similarity component
}

// ChunkResult represents a document chunk matched in focus mode
type ChunkResult struct {
	Chunk *DocumentChunk `json:"chunk"`
	Score float64        `json:"score"`
}
