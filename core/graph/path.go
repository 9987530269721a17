// Package graph implements traversal over the note link graph.
package graph

import (
	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/store"
)

// Traverser walks the link graph held by the store
type Traverser struct {
	store *store.Store
}

// NewTraverser creates a new graph traverser
func NewTraverser(s *store.Store) *Traverser {
	return &Traverser{store: s}
}

// ShortestPath returns the note ids along a shortest path from start to end,
// both endpoints included. Links are treated as unweighted edges, so the
// shortest path is the one with the fewest hops. Returns an empty path when
// either note is unknown or no path exists, and a single-element path when
// start equals end.
func (t *Traverser) ShortestPath(startID, endID uuid.UUID) []uuid.UUID {
	if !t.store.Has(startID) || !t.store.Has(endID) {
		return nil
	}
	if startID == endID {
		return []uuid.UUID{startID}
	}

	parent := map[uuid.UUID]uuid.UUID{startID: startID}
	queue := []uuid.UUID{startID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == endID {
			return t.buildPath(parent, startID, endID)
		}

		for _, neighbor := range t.store.Neighbors(current) {
			if _, visited := parent[neighbor]; visited {
				continue
			}
			parent[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	return nil
}

// buildPath walks the parent map back from end to start and reverses
func (t *Traverser) buildPath(parent map[uuid.UUID]uuid.UUID, startID, endID uuid.UUID) []uuid.UUID {
	var path []uuid.UUID
	for current := endID; ; current = parent[current] {
		path = append(path, current)
		if current == startID {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
