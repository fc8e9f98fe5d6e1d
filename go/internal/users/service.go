package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/auth"
)

// Service exposes user CRUD and the session endpoints over REST.
type Service struct {
	app      *App
	auth     *auth.Middleware
	verifier *auth.Verifier
	clock    clockwork.Clock
}

// NewService creates the users HTTP service.
func NewService(app *App, authMW *auth.Middleware, verifier *auth.Verifier, clock clockwork.Clock) *Service {
	return &Service{
		app:      app,
		auth:     authMW,
		verifier: verifier,
		clock:    clock,
	}
}

// RegisterRoutes mounts the user and session routes on the router.
func (s *Service) RegisterRoutes(router *mux.Router) {
	manage := auth.PermissionManageUsers

	router.HandleFunc("/users", s.auth.Require(manage, s.handleCreate)).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}", s.auth.Require(manage, s.handleGet)).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", s.auth.Require(manage, s.handleUpdate)).Methods(http.MethodPatch)
	router.HandleFunc("/users/{id}", s.auth.Require(manage, s.handleDelete)).Methods(http.MethodDelete)

	router.HandleFunc("/auth/session", s.handleCreateSession).Methods(http.MethodPost)
	router.HandleFunc("/auth/session", s.handleDeleteSession).Methods(http.MethodDelete)
	router.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
}

// handleCreateSession exchanges a verified bearer token for the dashboard's
// httpOnly session cookie, creating the user record on first sign-in.
func (s *Service) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.BearerToken(r.Header.Get("Authorization"))
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	claims, err := s.verifier.Verify(token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	user, err := s.app.GetUserByEmail(r.Context(), claims.Email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.writeAppError(w, err)
			return
		}
		user, err = s.app.CreateUser(r.Context(), CreateUserRequest{
			DisplayName: claims.Name,
			Email:       claims.Email,
		})
		if err != nil {
			s.writeAppError(w, err)
			return
		}
		log.Info().
			Str("user_id", user.ID.String()).
			Str("email", user.Email).
			Msg("user provisioned on first sign-in")
	}

	http.SetCookie(w, auth.NewSessionCookie(token, s.clock))
	writeJSON(w, http.StatusOK, user)
}

func (s *Service) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	cookie := auth.NewSessionCookie("", s.clock)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the profile behind the current session.
func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())
	if !session.Authenticated() {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	user, err := s.app.GetUserByEmail(r.Context(), session.Email)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.CreateUser(r.Context(), req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.app.GetUser(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.app.UpdateUser(r.Context(), id, req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.app.DeleteUser(r.Context(), id); err != nil {
		s.writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg("user request failed")
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
