package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesNewNotesDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewNotesDBHandler", func(t *testing.T) {
		notesDbHandler, err := NewNotesDBHandler(database, 3, true)
		assert.NoError(t, err, "Expected NewNotesDBHandler to not return an error")
		require.NotNil(t, notesDbHandler, "Expected NewNotesDBHandler to return a non-nil instance")
		require.NotNil(t, notesDbHandler.db, "Expected NewNotesDBHandler to have a non-nil database instance")
		require.NotNil(t, notesDbHandler.db.Instance, "Expected NewNotesDBHandler to have a non-nil database connection instance")
	})

	t.Run("Invalid call NewNotesDBHandler with nil database", func(t *testing.T) {
		_, err := NewNotesDBHandler(nil, 3, false)
		assert.Error(t, err, "Expected error when creating NotesDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil", "Expected specific error message for nil database connection")
	})
}

func TestNotesUpsert(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	t.Run("Insert note without embedding", func(t *testing.T) {
		note := model.NewNote("Test Note", "Some content", model.ItemTypeNote)

		err := notesDbHandler.UpsertNote(note)
		assert.NoError(t, err, "Expected UpsertNote to not return an error")
		assert.WithinDuration(t, note.CreatedAt, time.Now(), 2*time.Second, "Expected CreatedAt to be set")
		assert.False(t, note.HasEmbedding(), "Expected no embedding after insert")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})

	t.Run("Insert note with embedding", func(t *testing.T) {
		note := model.NewNote("Embedded Note", "Some content", model.ItemTypeNote)
		note.Embedding = []float32{1, 0, 0}

		err := notesDbHandler.UpsertNote(note)
		assert.NoError(t, err, "Expected UpsertNote to not return an error")
		assert.Equal(t, []float32{1, 0, 0}, note.Embedding, "Expected the embedding to round-trip")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})

	t.Run("Upsert updates an existing note", func(t *testing.T) {
		note := model.NewNote("Original", "Original content", model.ItemTypeNote)
		err := notesDbHandler.UpsertNote(note)
		require.NoError(t, err)

		note.Title = "Updated"
		note.Content = "Updated content"
		err = notesDbHandler.UpsertNote(note)
		assert.NoError(t, err, "Expected the second upsert to not return an error")

		selected, err := notesDbHandler.SelectNote(note.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated", selected.Title, "Expected the updated title")
		assert.Equal(t, "Updated content", selected.Content, "Expected the updated content")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})
}

func TestNotesSelect(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	t.Run("Select note by id", func(t *testing.T) {
		note := model.NewNote("Select Me", "Selectable content", model.ItemTypePDF)
		note.Category = "documents"
		require.NoError(t, notesDbHandler.UpsertNote(note))

		selected, err := notesDbHandler.SelectNote(note.ID)
		assert.NoError(t, err, "Expected SelectNote to not return an error")
		require.NotNil(t, selected, "Expected a selected note")
		assert.Equal(t, note.ID, selected.ID, "Expected the same id")
		assert.Equal(t, "Select Me", selected.Title, "Expected the same title")
		assert.Equal(t, "documents", selected.Category, "Expected the same category")
		assert.Equal(t, model.ItemTypePDF, selected.ItemType, "Expected the same item type")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})

	t.Run("Select unknown note returns an error", func(t *testing.T) {
		_, err := notesDbHandler.SelectNote(uuid.New())
		assert.Error(t, err, "Expected selecting an unknown note to return an error")
	})

	t.Run("Select all notes preserves creation order", func(t *testing.T) {
		first := model.NewNote("First", "first content", model.ItemTypeNote)
		second := model.NewNote("Second", "second content", model.ItemTypeNote)
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		require.NoError(t, notesDbHandler.UpsertNote(first))
		require.NoError(t, notesDbHandler.UpsertNote(second))

		notes, err := notesDbHandler.SelectAllNotes()
		assert.NoError(t, err, "Expected SelectAllNotes to not return an error")
		require.Len(t, notes, 2, "Expected both notes")
		assert.Equal(t, first.ID, notes[0].ID, "Expected the older note first")
		assert.Equal(t, second.ID, notes[1].ID, "Expected the newer note second")

		// Cleanup
		notesDbHandler.DeleteNote(first.ID)
		notesDbHandler.DeleteNote(second.ID)
	})
}

func TestNotesUpdateEmbedding(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	t.Run("Update embedding of an existing note", func(t *testing.T) {
		note := model.NewNote("Embed Me", "content", model.ItemTypeNote)
		require.NoError(t, notesDbHandler.UpsertNote(note))

		err := notesDbHandler.UpdateNoteEmbedding(note.ID, []float32{0, 1, 0})
		assert.NoError(t, err, "Expected UpdateNoteEmbedding to not return an error")

		selected, err := notesDbHandler.SelectNote(note.ID)
		require.NoError(t, err)
		assert.Equal(t, []float32{0, 1, 0}, selected.Embedding, "Expected the stored embedding")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})

	t.Run("Clearing the embedding stores null", func(t *testing.T) {
		note := model.NewNote("Clear Me", "content", model.ItemTypeNote)
		note.Embedding = []float32{1, 0, 0}
		require.NoError(t, notesDbHandler.UpsertNote(note))

		err := notesDbHandler.UpdateNoteEmbedding(note.ID, nil)
		assert.NoError(t, err, "Expected clearing the embedding to not return an error")

		selected, err := notesDbHandler.SelectNote(note.ID)
		require.NoError(t, err)
		assert.False(t, selected.HasEmbedding(), "Expected the embedding to be cleared")

		// Cleanup
		notesDbHandler.DeleteNote(note.ID)
	})
}

func TestNotesDelete(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	t.Run("Delete removes the note", func(t *testing.T) {
		note := model.NewNote("Delete Me", "content", model.ItemTypeNote)
		require.NoError(t, notesDbHandler.UpsertNote(note))

		err := notesDbHandler.DeleteNote(note.ID)
		assert.NoError(t, err, "Expected DeleteNote to not return an error")

		_, err = notesDbHandler.SelectNote(note.ID)
		assert.Error(t, err, "Expected the note to be gone")
	})
}
