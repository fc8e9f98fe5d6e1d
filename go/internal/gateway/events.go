package gateway

import (
	"encoding/json"
	"time"
)

// EventEnvelope is the wire format the outbox relay publishes to JetStream.
type EventEnvelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	MatchID   string          `json:"matchId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// FrameType identifies a websocket frame sent to overlay clients.
type FrameType string

const (
	// FrameTypeOverlayState carries a full OverlayState snapshot. Sent on
	// connect and after every committed match write.
	FrameTypeOverlayState FrameType = "overlay_state"

	// FrameTypeSponsorRotation advances the sponsor ticker to a new index.
	FrameTypeSponsorRotation FrameType = "sponsor_rotation"
)

// OverlayFrame is the envelope for every frame pushed over the overlay
// websocket.
type OverlayFrame struct {
	Type      FrameType       `json:"type"`
	MatchID   string          `json:"matchId"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewOverlayFrame marshals data into a frame. Returns an error only when
// data cannot be encoded.
func NewOverlayFrame(frameType FrameType, matchID string, ts time.Time, data interface{}) (*OverlayFrame, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &OverlayFrame{
		Type:      frameType,
		MatchID:   matchID,
		Timestamp: ts,
		Data:      raw,
	}, nil
}

// SponsorRotationPayload points the overlay at the sponsor to show next.
type SponsorRotationPayload struct {
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	RotatedAt time.Time `json:"rotatedAt"`
}
