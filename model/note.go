package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemType tags the capture pipeline a note's text came from
type ItemType string

const (
	ItemTypeNote  ItemType = "note"
	ItemTypeAudio ItemType = "audio"
	ItemTypeImage ItemType = "image"
	ItemTypePDF   ItemType = "pdf"
)

// Note represents the atomic knowledge unit (node in the graph)
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	ItemType  ItemType  `json:"item_type"`
	Embedding []float32 `json:"embedding,omitempty"` // nil until the linker has processed the note
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a note with a fresh identity and creation timestamp.
// The embedding stays nil; it is computed by the auto-linking engine on ingestion.
func NewNote(title, content string, itemType ItemType) *Note {
	if itemType == "" {
		itemType = ItemTypeNote
	}
	return &Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		ItemType:  itemType,
		Metadata:  Metadata{},
		CreatedAt: time.Now(),
	}
}

// HasEmbedding reports whether the note has been processed by the linker
func (n *Note) HasEmbedding() bool {
	return len(n.Embedding) > 0
}
