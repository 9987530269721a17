package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinksNewLinksDBHandler(t *testing.T) {
	database := initDB(t)

	// The notes table must exist for the foreign keys
	_, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	t.Run("Valid call NewLinksDBHandler", func(t *testing.T) {
		linksDbHandler, err := NewLinksDBHandler(database, true)
		assert.NoError(t, err, "Expected NewLinksDBHandler to not return an error")
		require.NotNil(t, linksDbHandler, "Expected NewLinksDBHandler to return a non-nil instance")
		require.NotNil(t, linksDbHandler.db, "Expected NewLinksDBHandler to have a non-nil database instance")
		require.NotNil(t, linksDbHandler.db.Instance, "Expected NewLinksDBHandler to have a non-nil database connection instance")
	})

	t.Run("Invalid call NewLinksDBHandler with nil database", func(t *testing.T) {
		_, err := NewLinksDBHandler(nil, false)
		assert.Error(t, err, "Expected error when creating LinksDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil", "Expected specific error message for nil database connection")
	})
}

func TestLinksInsert(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	linksDbHandler, err := NewLinksDBHandler(database, true)
	require.NoError(t, err)

	source := model.NewNote("Source", "source content", model.ItemTypeNote)
	target := model.NewNote("Target", "target content", model.ItemTypeNote)
	require.NoError(t, notesDbHandler.UpsertNote(source))
	require.NoError(t, notesDbHandler.UpsertNote(target))

	t.Run("Insert link between notes", func(t *testing.T) {
		pair := model.NewLinkPair(source.ID, target.ID, 0.8, "semantic match (80%)")

		err := linksDbHandler.InsertLink(pair.Forward)
		assert.NoError(t, err, "Expected InsertLink to not return an error")
		assert.WithinDuration(t, pair.Forward.CreatedAt, time.Now(), 2*time.Second, "Expected CreatedAt to be set")

		// Cleanup
		linksDbHandler.DeleteLink(pair.Forward.ID)
	})

	t.Run("Insert link pair stores both directions", func(t *testing.T) {
		pair := model.NewLinkPair(source.ID, target.ID, 0.8, "semantic match (80%)")

		err := linksDbHandler.InsertLinkPair(pair)
		assert.NoError(t, err, "Expected InsertLinkPair to not return an error")

		forward, err := linksDbHandler.SelectLinksFromNote(source.ID)
		require.NoError(t, err)
		reverse, err := linksDbHandler.SelectLinksFromNote(target.ID)
		require.NoError(t, err)
		require.Len(t, forward, 1, "Expected the forward link")
		require.Len(t, reverse, 1, "Expected the reverse link")
		assert.Equal(t, forward[0].Strength, reverse[0].Strength, "Expected identical strength on both directions")

		// Cleanup
		linksDbHandler.DeleteLink(pair.Forward.ID)
		linksDbHandler.DeleteLink(pair.Reverse.ID)
	})

	t.Run("Self links are rejected by the table constraint", func(t *testing.T) {
		link := &model.Link{
			ID:        uuid.New(),
			SourceID:  source.ID,
			TargetID:  source.ID,
			Strength:  1.0,
			Reason:    "self",
			CreatedAt: time.Now(),
		}

		err := linksDbHandler.InsertLink(link)
		assert.Error(t, err, "Expected the self-link constraint to reject the insert")
	})

	// Cleanup
	notesDbHandler.DeleteNote(source.ID)
	notesDbHandler.DeleteNote(target.ID)
}

func TestLinksSelect(t *testing.T) {
	database := initDB(t)

	notesDbHandler, err := NewNotesDBHandler(database, 3, true)
	require.NoError(t, err)

	linksDbHandler, err := NewLinksDBHandler(database, true)
	require.NoError(t, err)

	source := model.NewNote("Source", "source content", model.ItemTypeNote)
	target := model.NewNote("Target", "target content", model.ItemTypeNote)
	require.NoError(t, notesDbHandler.UpsertNote(source))
	require.NoError(t, notesDbHandler.UpsertNote(target))

	pair := model.NewLinkPair(source.ID, target.ID, 0.6, "semantic match (60%)")
	require.NoError(t, linksDbHandler.InsertLinkPair(pair))

	t.Run("Select link by id", func(t *testing.T) {
		link, err := linksDbHandler.SelectLink(pair.Forward.ID)
		assert.NoError(t, err, "Expected SelectLink to not return an error")
		require.NotNil(t, link, "Expected a selected link")
		assert.Equal(t, source.ID, link.SourceID, "Expected the same source")
		assert.Equal(t, target.ID, link.TargetID, "Expected the same target")
		assert.Equal(t, 0.6, link.Strength, "Expected the same strength")
		assert.Equal(t, "semantic match (60%)", link.Reason, "Expected the same reason")
	})

	t.Run("Select all links returns both directions", func(t *testing.T) {
		links, err := linksDbHandler.SelectAllLinks()
		assert.NoError(t, err, "Expected SelectAllLinks to not return an error")
		assert.Len(t, links, 2, "Expected both mirrored links")
	})

	t.Run("Deleting a note cascades to its links", func(t *testing.T) {
		require.NoError(t, notesDbHandler.DeleteNote(target.ID))

		links, err := linksDbHandler.SelectAllLinks()
		assert.NoError(t, err)
		assert.Empty(t, links, "Expected the cascade to remove both directions")
	})

	// Cleanup
	notesDbHandler.DeleteNote(source.ID)
}
