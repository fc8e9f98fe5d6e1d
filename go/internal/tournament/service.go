package tournament

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/auth"
)

// Service exposes tournament CRUD over REST.
type Service struct {
	app  *App
	auth *auth.Middleware
}

// NewService creates the tournament HTTP service.
func NewService(app *App, authMW *auth.Middleware) *Service {
	return &Service{app: app, auth: authMW}
}

// RegisterRoutes mounts the tournament routes on the router.
func (s *Service) RegisterRoutes(router *mux.Router) {
	manage := auth.PermissionManageTournaments

	router.HandleFunc("/tournaments", s.auth.Require(manage, s.handleCreate)).Methods(http.MethodPost)
	router.HandleFunc("/tournaments", s.auth.Require(manage, s.handleList)).Methods(http.MethodGet)
	router.HandleFunc("/tournaments/{id}", s.auth.Require(manage, s.handleGet)).Methods(http.MethodGet)
	router.HandleFunc("/tournaments/{id}", s.auth.Require(manage, s.handleUpdate)).Methods(http.MethodPatch)
	router.HandleFunc("/tournaments/{id}", s.auth.Require(manage, s.handleDelete)).Methods(http.MethodDelete)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	t, err := s.app.CreateTournament(r.Context(), req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// handleList returns the caller's tournaments. The dashboard only ever shows
// what the signed-in organizer owns.
func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	ownerIDStr := r.URL.Query().Get("owner_id")
	if ownerIDStr == "" {
		writeError(w, http.StatusBadRequest, "owner_id is required")
		return
	}
	ownerID, err := uuid.Parse(ownerIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner_id")
		return
	}

	tournaments, err := s.app.ListTournamentsByOwner(r.Context(), ownerID)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournaments)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	t, err := s.app.GetTournament(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	var req UpdateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := s.app.UpdateTournament(r.Context(), id, req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	if err := s.app.DeleteTournament(r.Context(), id); err != nil {
		s.writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "tournament not found")
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("tournament request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
