package model

// SearchConfig carries the engine's scoring constants.
// The defaults are the engine's fixed contract; they are configurable for
// experiments but every documented behavior assumes DefaultSearchConfig.
type SearchConfig struct {
	// Auto-linking
	LinkThreshold float64 `json:"link_threshold"` // minimum similarity for a link pair

	// Ranked search
	SearchThreshold float64 `json:"search_threshold"` // minimum total score for inclusion
	TitleInQuery    float64 `json:"title_in_query"`   // boost when the query contains the whole title
	QueryInTitle    float64 `json:"query_in_title"`   // boost when the title contains the query
	KeywordBoost    float64 `json:"keyword_boost"`    // boost when the content contains the query

	// Focus mode
	ChunkThreshold   float64 `json:"chunk_threshold"`    // minimum chunk score for an answer
	ChunkKeywordStep float64 `json:"chunk_keyword_step"` // per query word present in a chunk

	// Snippets
	SnippetMaxLen    int `json:"snippet_max_len"`
	SnippetPhraseHit int `json:"snippet_phrase_hit"` // bonus for a verbatim phrase match
}

// DefaultSearchConfig returns the engine's fixed thresholds
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		LinkThreshold:    0.35,
		SearchThreshold:  0.22,
		TitleInQuery:     0.5,
		QueryInTitle:     0.3,
		KeywordBoost:     0.1,
		ChunkThreshold:   0.25,
		ChunkKeywordStep: 0.2,
		SnippetMaxLen:    300,
		SnippetPhraseHit: 5,
	}
}
