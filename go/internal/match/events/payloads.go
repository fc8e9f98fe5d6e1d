// Package events defines the payloads carried by match outbox events. They
// live in their own package so the gateway and console can decode them
// without importing the persistence layer.
package events

import (
	"time"

	"github.com/jtan/courtcast/go/internal/models"
)

// Event type names as stored in the outbox and carried on the wire.
const (
	TypeMatchCreated = "MatchCreated"
	TypeMatchUpdated = "MatchUpdated"
	TypeMatchDeleted = "MatchDeleted"
)

// MatchCreatedPayload is emitted when an operator schedules a match.
type MatchCreatedPayload struct {
	Match models.Match `json:"match"`
}

// MatchUpdatedPayload carries the full post-merge document. Subscribers
// replace their replica wholesale, so delivery order alone decides the
// winning state.
type MatchUpdatedPayload struct {
	Match models.Match `json:"match"`
}

// MatchDeletedPayload is emitted when a match is removed.
type MatchDeletedPayload struct {
	MatchID   string    `json:"matchId"`
	DeletedAt time.Time `json:"deletedAt"`
}
