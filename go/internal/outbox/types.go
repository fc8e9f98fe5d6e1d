// Package outbox relays committed match writes from the transactional outbox
// table to JetStream. Publishing off the outbox (instead of inside request
// handlers) is what gives subscribers every committed write in commit order.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is one row of the match_outbox table for the relay layer.
type OutboxEvent struct {
	ID        uuid.UUID       `json:"id"`
	MatchID   uuid.UUID       `json:"match_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}
