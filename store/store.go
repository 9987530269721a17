// Package store holds the shared in-memory note and link collection.
// It is the only mutable state in the module: writers take the exclusive
// lock, readers work on copied snapshots, and every mutation is written
// through to the optional persister afterwards ("save after mutation").
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
)

// Persister is the persistence contract the store writes through to.
// The database package provides a Postgres implementation; a nil persister
// keeps the store fully in memory.
type Persister interface {
	SaveNote(note *model.Note) error
	SaveLinkPair(pair *model.LinkPair) error
	DeleteNote(id uuid.UUID) error
}

// Store is the lock-guarded note+link collection
type Store struct {
	mu        sync.RWMutex
	notes     map[uuid.UUID]*model.Note
	order     []uuid.UUID // insertion order, defines snapshot scan order
	links     map[uuid.UUID][]*model.Link
	persister Persister
}

// NewStore creates a store; persister may be nil for in-memory use
func NewStore(persister Persister) *Store {
	return &Store{
		notes:     make(map[uuid.UUID]*model.Note),
		links:     make(map[uuid.UUID][]*model.Link),
		persister: persister,
	}
}

// Load seeds the store from previously persisted notes and links.
// It does not write back to the persister.
func (s *Store) Load(notes []*model.Note, links []*model.Link) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, note := range notes {
		if _, exists := s.notes[note.ID]; !exists {
			s.order = append(s.order, note.ID)
		}
		s.notes[note.ID] = note
	}
	for _, link := range links {
		s.links[link.SourceID] = append(s.links[link.SourceID], link)
	}
}

// AddNote adds a note to the collection and persists it
func (s *Store) AddNote(note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notes[note.ID]; !exists {
		s.order = append(s.order, note.ID)
	}
	s.notes[note.ID] = note

	return s.saveNote(note)
}

// Note returns the note with the given id
func (s *Store) Note(id uuid.UUID) (*model.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	return note, ok
}

// Snapshot returns the notes in insertion order.
// Notes are replaced, never mutated in place, so the returned pointers stay
// consistent for the duration of a read pass.
func (s *Store) Snapshot() []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]*model.Note, 0, len(s.order))
	for _, id := range s.order {
		if note, ok := s.notes[id]; ok {
			notes = append(notes, note)
		}
	}
	return notes
}

// Count returns the number of stored notes
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes)
}

// SetEmbedding replaces a note's embedding and persists the note.
// The note record is copied so snapshots taken earlier stay unchanged.
func (s *Store) SetEmbedding(id uuid.UUID, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return helper.NewError("set embedding", fmt.Errorf("note %s not found", id))
	}

	updated := *note
	updated.Embedding = embedding
	s.notes[id] = &updated

	return s.saveNote(&updated)
}

// UpdateNoteContent replaces a note's content and clears its embedding.
// Existing links are left untouched; re-linking after an edit is an explicit
// caller decision, not an automatic one.
func (s *Store) UpdateNoteContent(id uuid.UUID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return helper.NewError("update content", fmt.Errorf("note %s not found", id))
	}

	updated := *note
	updated.Content = content
	updated.Embedding = nil
	s.notes[id] = &updated

	return s.saveNote(&updated)
}

// AddLinkPair adds both mirrored links and persists them as one unit.
// Self-links and duplicate pairs are rejected.
func (s *Store) AddLinkPair(pair *model.LinkPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sourceID := pair.Forward.SourceID
	targetID := pair.Forward.TargetID

	if sourceID == targetID {
		return helper.NewError("add link pair", fmt.Errorf("link between note %s and itself", sourceID))
	}
	if s.linkExistsLocked(sourceID, targetID) {
		return helper.NewError("add link pair", fmt.Errorf("link between %s and %s already exists", sourceID, targetID))
	}

	s.links[sourceID] = append(s.links[sourceID], pair.Forward)
	s.links[targetID] = append(s.links[targetID], pair.Reverse)

	if s.persister != nil {
		if err := s.persister.SaveLinkPair(pair); err != nil {
			return helper.NewError("persist link pair", err)
		}
	}

	return nil
}

// LinkExists reports whether a link between the two notes exists in either direction
func (s *Store) LinkExists(a, b uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.linkExistsLocked(a, b)
}

// Links returns the links originating at a note
func (s *Store) Links(sourceID uuid.UUID) []*model.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]*model.Link, len(s.links[sourceID]))
	copy(links, s.links[sourceID])
	return links
}

// AllLinks returns every stored link
func (s *Store) AllLinks() []*model.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var links []*model.Link
	for _, id := range s.order {
		links = append(links, s.links[id]...)
	}
	return links
}

// Neighbors returns the ids a note links to, in link insertion order
func (s *Store) Neighbors(id uuid.UUID) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	neighbors := make([]uuid.UUID, 0, len(s.links[id]))
	for _, link := range s.links[id] {
		neighbors = append(neighbors, link.TargetID)
	}
	return neighbors
}

// Has reports whether a note with the given id exists
func (s *Store) Has(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.notes[id]
	return ok
}

// DeleteNote removes a note and cascades to all links touching it
func (s *Store) DeleteNote(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return helper.NewError("delete note", fmt.Errorf("note %s not found", id))
	}

	delete(s.notes, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	delete(s.links, id)
	for sourceID, links := range s.links {
		kept := links[:0]
		for _, link := range links {
			if link.TargetID != id {
				kept = append(kept, link)
			}
		}
		s.links[sourceID] = kept
	}

	if s.persister != nil {
		if err := s.persister.DeleteNote(id); err != nil {
			return helper.NewError("persist delete", err)
		}
	}

	return nil
}

func (s *Store) linkExistsLocked(a, b uuid.UUID) bool {
	for _, link := range s.links[a] {
		if link.TargetID == b {
			return true
		}
	}
	for _, link := range s.links[b] {
		if link.TargetID == a {
			return true
		}
	}
	return false
}

func (s *Store) saveNote(note *model.Note) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.SaveNote(note); err != nil {
		return helper.NewError("persist note", err)
	}
	return nil
}
