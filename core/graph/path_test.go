package graph

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/model"
	"github.com/siherrmann/notegraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initGraph builds a store holding the named notes and the given edges
func initGraph(t *testing.T, names []string, edges [][2]string) (*Traverser, map[string]uuid.UUID) {
	t.Helper()
	s := store.NewStore(nil)

	ids := make(map[string]uuid.UUID)
	for _, name := range names {
		note := model.NewNote(name, name+" content", model.ItemTypeNote)
		require.NoError(t, s.AddNote(note), "Expected adding the note to not return an error")
		ids[name] = note.ID
	}

	for _, edge := range edges {
		pair := model.NewLinkPair(ids[edge[0]], ids[edge[1]], 0.5, "test link")
		require.NoError(t, s.AddLinkPair(pair), "Expected adding the link pair to not return an error")
	}

	return NewTraverser(s), ids
}

func TestShortestPath(t *testing.T) {
	t.Run("Finds the fewest-hop path over a longer alternative", func(t *testing.T) {
		traverser, ids := initGraph(t,
			[]string{"a", "b", "c", "d", "e"},
			[][2]string{{"a", "b"}, {"b", "c"}, {"a", "d"}, {"d", "e"}, {"e", "c"}},
		)

		path := traverser.ShortestPath(ids["a"], ids["c"])
		require.Len(t, path, 3, "Expected the two-hop path")
		assert.Equal(t, []uuid.UUID{ids["a"], ids["b"], ids["c"]}, path, "Expected the path through b")
	})

	t.Run("Path includes both endpoints", func(t *testing.T) {
		traverser, ids := initGraph(t,
			[]string{"a", "b"},
			[][2]string{{"a", "b"}},
		)

		path := traverser.ShortestPath(ids["a"], ids["b"])
		require.Len(t, path, 2)
		assert.Equal(t, ids["a"], path[0], "Expected the start note first")
		assert.Equal(t, ids["b"], path[1], "Expected the end note last")
	})

	t.Run("Start equals end yields a single-element path", func(t *testing.T) {
		traverser, ids := initGraph(t, []string{"a"}, nil)

		path := traverser.ShortestPath(ids["a"], ids["a"])
		assert.Equal(t, []uuid.UUID{ids["a"]}, path, "Expected only the note itself")
	})

	t.Run("Unreachable notes yield an empty path", func(t *testing.T) {
		traverser, ids := initGraph(t,
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}},
		)

		path := traverser.ShortestPath(ids["a"], ids["c"])
		assert.Empty(t, path, "Expected no path to the disconnected note")
	})

	t.Run("Unknown notes yield an empty path", func(t *testing.T) {
		traverser, ids := initGraph(t, []string{"a"}, nil)

		path := traverser.ShortestPath(ids["a"], uuid.New())
		assert.Empty(t, path, "Expected no path to an unknown note")
	})

	t.Run("Links are traversable in both directions", func(t *testing.T) {
		traverser, ids := initGraph(t,
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}, {"b", "c"}},
		)

		path := traverser.ShortestPath(ids["c"], ids["a"])
		assert.Equal(t, []uuid.UUID{ids["c"], ids["b"], ids["a"]}, path, "Expected the reverse path")
	})

	t.Run("Cycles do not loop the traversal", func(t *testing.T) {
		traverser, ids := initGraph(t,
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
		)

		path := traverser.ShortestPath(ids["a"], ids["c"])
		assert.Equal(t, []uuid.UUID{ids["a"], ids["c"]}, path, "Expected the direct edge despite the cycle")
	})
}
