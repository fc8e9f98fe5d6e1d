package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// OverlayHandler serves the public read-only overlay endpoints. They back
// the initial page load; everything after that arrives over the websocket.
type OverlayHandler struct {
	snapshots *SnapshotProvider
}

// NewOverlayHandler creates the overlay HTTP handler.
func NewOverlayHandler(snapshots *SnapshotProvider) *OverlayHandler {
	return &OverlayHandler{snapshots: snapshots}
}

// GetOverlayState returns the derived overlay document for a match. A missing
// match returns the render-nothing state with 200, mirroring the websocket's
// silent NotFound handling.
func (h *OverlayHandler) GetOverlayState(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	m, err := h.snapshots.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			writeJSON(w, http.StatusOK, HiddenOverlayState())
			return
		}
		log.Error().Err(err).Str("match_id", matchID.String()).Msg("failed to load overlay state")
		http.Error(w, "failed to load match", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, DeriveOverlayState(*m, time.Now()))
}

// GetOverlaySponsors returns the active sponsor list for the match's
// tournament, sorted by priority. Matches without a tournament get an empty
// list.
func (h *OverlayHandler) GetOverlaySponsors(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	m, err := h.snapshots.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			writeJSON(w, http.StatusOK, []struct{}{})
			return
		}
		log.Error().Err(err).Str("match_id", matchID.String()).Msg("failed to load match for sponsors")
		http.Error(w, "failed to load match", http.StatusInternalServerError)
		return
	}

	if m.TournamentID == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}

	sponsors, err := h.snapshots.GetActiveSponsors(r.Context(), *m.TournamentID)
	if err != nil {
		log.Error().Err(err).Str("match_id", matchID.String()).Msg("failed to load sponsors")
		http.Error(w, "failed to load sponsors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sponsors)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
