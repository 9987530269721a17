package database

import (
	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/model"
)

// Persister adapts the database handlers to the store's persistence contract.
// Writes follow "save after mutation": the store mutates its in-memory
// collection first and calls through here afterwards.
type Persister struct {
	Notes *NotesDBHandler
	Links *LinksDBHandler
}

// NewPersister creates a persister over the two handlers
func NewPersister(notes *NotesDBHandler, links *LinksDBHandler) *Persister {
	return &Persister{
		Notes: notes,
		Links: links,
	}
}

// SaveNote upserts a note record
func (p *Persister) SaveNote(note *model.Note) error {
	return p.Notes.UpsertNote(note)
}

// SaveLinkPair inserts both mirrored links as one unit
func (p *Persister) SaveLinkPair(pair *model.LinkPair) error {
	return p.Links.InsertLinkPair(pair)
}

// DeleteNote removes a note; links cascade in the database
func (p *Persister) DeleteNote(id uuid.UUID) error {
	return p.Notes.DeleteNote(id)
}
