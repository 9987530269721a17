package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
	loadSql "github.com/siherrmann/notegraph/sql"
)

// NotesDBHandlerFunctions defines the interface for Notes database operations.
type NotesDBHandlerFunctions interface {
	UpsertNote(note *model.Note) error
	SelectNote(id uuid.UUID) (*model.Note, error)
	SelectAllNotes() ([]*model.Note, error)
	UpdateNoteEmbedding(id uuid.UUID, embedding []float32) error
	DeleteNote(id uuid.UUID) error
}

// NotesDBHandler handles note-related database operations
type NotesDBHandler struct {
	db *helper.Database
}

// NewNotesDBHandler creates a new notes database handler.
// It initializes the database connection and loads note-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewNotesDBHandler(db *helper.Database, embeddingDim int, force bool) (*NotesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	notesDbHandler := &NotesDBHandler{
		db: db,
	}

	err := loadSql.LoadNotesSql(notesDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load notes sql", err)
	}

	err = notesDbHandler.CreateTable(embeddingDim)
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized NotesDBHandler")

	return notesDbHandler, nil
}

// CreateTable creates the 'notes' table in the database.
// If the table already exists, it does not create it again.
func (h *NotesDBHandler) CreateTable(embeddingDim int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_notes($1);`, embeddingDim)
	if err != nil {
		log.Panicf("error initializing notes table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table notes")

	return nil
}

// UpsertNote inserts a note or updates it if the id already exists
func (h *NotesDBHandler) UpsertNote(note *model.Note) error {
	var embedding interface{}
	if note.HasEmbedding() {
		embedding = pgvector.NewVector(note.Embedding)
	}

	row := h.db.Instance.QueryRow(
		`SELECT * FROM upsert_note($1, $2, $3, $4, $5, $6, $7, $8)`,
		note.ID,
		note.Title,
		note.Content,
		note.Category,
		note.ItemType,
		embedding,
		note.Metadata,
		note.CreatedAt,
	)

	return scanNote(row, note)
}

// SelectNote retrieves a note by ID
func (h *NotesDBHandler) SelectNote(id uuid.UUID) (*model.Note, error) {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_note($1)`,
		id,
	)

	note := &model.Note{}
	if err := scanNote(row, note); err != nil {
		return nil, err
	}

	return note, nil
}

// SelectAllNotes retrieves all notes ordered by creation time
func (h *NotesDBHandler) SelectAllNotes() ([]*model.Note, error) {
	rows, err := h.db.Instance.Query(`SELECT * FROM select_all_notes()`)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var notes []*model.Note
	for rows.Next() {
		note := &model.Note{}
		if err := scanNote(rows, note); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows", err)
	}

	return notes, nil
}

// UpdateNoteEmbedding updates only the embedding of a note
func (h *NotesDBHandler) UpdateNoteEmbedding(id uuid.UUID, embedding []float32) error {
	var vec interface{}
	if len(embedding) > 0 {
		vec = pgvector.NewVector(embedding)
	}

	row := h.db.Instance.QueryRow(
		`SELECT * FROM update_note_embedding($1, $2)`,
		id,
		vec,
	)

	note := &model.Note{}
	return scanNote(row, note)
}

// DeleteNote deletes a note; its links are removed by the cascade
func (h *NotesDBHandler) DeleteNote(id uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_note($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// nullVector scans a nullable pgvector column
type nullVector struct {
	Vector pgvector.Vector
	Valid  bool
}

func (v *nullVector) Scan(src interface{}) error {
	if src == nil {
		v.Valid = false
		return nil
	}
	v.Valid = true
	return v.Vector.Scan(src)
}

func scanNote(row scanner, note *model.Note) error {
	var embedding nullVector

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Category,
		&note.ItemType,
		&embedding,
		&note.Metadata,
		&note.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	if embedding.Valid {
		note.Embedding = embedding.Vector.Slice()
	} else {
		note.Embedding = nil
	}

	return nil
}
