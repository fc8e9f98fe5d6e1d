package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades overlay subscription requests. The endpoint is
// public: OBS browser sources cannot attach credentials.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	snapshots         *SnapshotProvider
}

// NewWebSocketHandler creates the overlay websocket handler.
func NewWebSocketHandler(cm *ConnectionManager, snapshots *SnapshotProvider) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		snapshots:         snapshots,
	}
}

// HandleOverlayConnection subscribes one overlay to one match. A subscription
// to a match that does not exist still upgrades: the client gets a single
// render-nothing state and then silence, never an error frame.
func (h *WebSocketHandler) HandleOverlayConnection(w http.ResponseWriter, r *http.Request) {
	matchIDStr := r.URL.Query().Get("match_id")
	if matchIDStr == "" {
		http.Error(w, "match_id is required", http.StatusBadRequest)
		return
	}

	matchID, err := uuid.Parse(matchIDStr)
	if err != nil {
		http.Error(w, "invalid match_id format", http.StatusBadRequest)
		return
	}

	state := HiddenOverlayState()
	m, err := h.snapshots.GetMatch(r.Context(), matchID)
	switch {
	case err == nil:
		state = DeriveOverlayState(*m, time.Now())
	case errors.Is(err, ErrMatchNotFound):
		log.Debug().Str("match_id", matchIDStr).Msg("subscription to unknown match")
	default:
		log.Error().Err(err).Str("match_id", matchIDStr).Msg("failed to load snapshot for new subscriber")
		http.Error(w, "failed to load match", http.StatusInternalServerError)
		return
	}

	initial, err := NewOverlayFrame(FrameTypeOverlayState, matchIDStr, time.Now(), state)
	if err != nil {
		http.Error(w, "failed to build initial frame", http.StatusInternalServerError)
		return
	}

	if err := h.connectionManager.UpgradeConnection(w, r, matchID, initial); err != nil {
		log.Error().
			Err(err).
			Str("match_id", matchIDStr).
			Msg("failed to upgrade overlay connection")
	}
}

// HandleConnectionStats reports active connection counts.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	stats := h.connectionManager.GetConnectionStats()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, stats)
}
