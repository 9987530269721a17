package model

// DocumentChunk is a paragraph-level slice of a loaded document's text,
// tagged with its source page number. Chunks exist only in memory for the
// duration of a focus session and are never persisted.
type DocumentChunk struct {
	Content string `json:"content"`
	Page    int    `json:"page"`
}
