package sponsor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/auth"
)

// Service exposes sponsor CRUD over REST. The overlay's public sponsor read
// lives on the gateway; everything here is dashboard-facing.
type Service struct {
	app  *App
	auth *auth.Middleware
}

// NewService creates the sponsor HTTP service.
func NewService(app *App, authMW *auth.Middleware) *Service {
	return &Service{app: app, auth: authMW}
}

// RegisterRoutes mounts the sponsor routes on the router.
func (s *Service) RegisterRoutes(router *mux.Router) {
	manage := auth.PermissionManageSponsors

	router.HandleFunc("/tournaments/{id}/sponsors", s.auth.Require(manage, s.handleCreate)).Methods(http.MethodPost)
	router.HandleFunc("/tournaments/{id}/sponsors", s.auth.Require(manage, s.handleList)).Methods(http.MethodGet)
	router.HandleFunc("/sponsors/{id}", s.auth.Require(manage, s.handleGet)).Methods(http.MethodGet)
	router.HandleFunc("/sponsors/{id}", s.auth.Require(manage, s.handleUpdate)).Methods(http.MethodPatch)
	router.HandleFunc("/sponsors/{id}", s.auth.Require(manage, s.handleDelete)).Methods(http.MethodDelete)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	var req CreateSponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.TournamentID = tournamentID
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	sp, err := s.app.CreateSponsor(r.Context(), req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sp)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tournament id")
		return
	}

	var sponsors interface{}
	if r.URL.Query().Get("active") == "true" {
		sponsors, err = s.app.ListActiveSponsors(r.Context(), tournamentID)
	} else {
		sponsors, err = s.app.ListSponsorsByTournament(r.Context(), tournamentID)
	}
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sponsors)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sponsor id")
		return
	}

	sp, err := s.app.GetSponsor(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sponsor id")
		return
	}

	var req UpdateSponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sp, err := s.app.UpdateSponsor(r.Context(), id, req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sponsor id")
		return
	}

	if err := s.app.DeleteSponsor(r.Context(), id); err != nil {
		s.writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "sponsor not found")
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("sponsor request failed")
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
