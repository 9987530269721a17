package model

import (
	"time"

	"github.com/google/uuid"
)

// Link represents a directed edge between two notes.
// Links are always created in mirrored pairs (A->B and B->A with the same
// strength), so the graph behaves as undirected in practice.
type Link struct {
	ID        uuid.UUID `json:"id"`
	SourceID  uuid.UUID `json:"source_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Strength  float64   `json:"strength"` // in [0,1]
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkPair holds the two mirrored links created for one note relationship
type LinkPair struct {
	Forward *Link `json:"forward"`
	Reverse *Link `json:"reverse"`
}

// NewLinkPair creates the mirrored links between two notes.
// Both directions share the strength and reason; the caller must persist
// them as one unit.
func NewLinkPair(sourceID, targetID uuid.UUID, strength float64, reason string) *LinkPair {
	now := time.Now()
	return &LinkPair{
		Forward: &Link{
			ID:        uuid.New(),
			SourceID:  sourceID,
			TargetID:  targetID,
			Strength:  strength,
			Reason:    reason,
			CreatedAt: now,
		},
		Reverse: &Link{
			ID:        uuid.New(),
			SourceID:  targetID,
			TargetID:  sourceID,
			Strength:  strength,
			Reason:    reason,
			CreatedAt: now,
		},
	}
}
