package match

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/auth"
	"github.com/jtan/courtcast/go/internal/models"
)

// Service exposes the match app over REST. All routes require a bearer
// credential; the overlay reads live on the gateway instead.
type Service struct {
	app  *App
	auth *auth.Middleware
}

// NewService creates the match HTTP service.
func NewService(app *App, authMW *auth.Middleware) *Service {
	return &Service{app: app, auth: authMW}
}

// RegisterRoutes mounts the match routes on the router.
func (s *Service) RegisterRoutes(router *mux.Router) {
	manage := auth.PermissionManageMatches

	router.HandleFunc("/tournaments/{id}/matches", s.auth.Require(manage, s.handleCreateMatch)).Methods(http.MethodPost)
	router.HandleFunc("/tournaments/{id}/matches", s.auth.Require(manage, s.handleListMatches)).Methods(http.MethodGet)
	router.HandleFunc("/matches/{id}", s.auth.Require(manage, s.handleGetMatch)).Methods(http.MethodGet)
	router.HandleFunc("/matches/{id}", s.auth.Require(manage, s.handlePatchMatch)).Methods(http.MethodPatch)
	router.HandleFunc("/matches/{id}", s.auth.Require(manage, s.handleDeleteMatch)).Methods(http.MethodDelete)
	router.HandleFunc("/matches/{id}/timer/start", s.auth.Require(manage, s.handleStartTimer)).Methods(http.MethodPost)
	router.HandleFunc("/matches/{id}/timer/stop", s.auth.Require(manage, s.handleStopTimer)).Methods(http.MethodPost)
}

func (s *Service) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.TournamentID = &tournamentID
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	m, err := s.app.CreateMatch(r.Context(), req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Service) handleListMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	matches, err := s.app.ListMatchesByTournament(r.Context(), tournamentID)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Service) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	m, err := s.app.GetMatch(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Service) handlePatchMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	var patch models.MatchPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := s.app.PatchMatch(r.Context(), id, patch)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Service) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	if err := s.app.DeleteMatch(r.Context(), id); err != nil {
		s.writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleStartTimer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	m, err := s.app.StartTimer(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Service) handleStopTimer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	m, err := s.app.StopTimer(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Service) writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "match not found")
	case errors.Is(err, ErrTimerAlreadyRunning), errors.Is(err, ErrTimerNotRunning):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("match request failed")
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
