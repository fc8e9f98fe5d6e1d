package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/models"
)

// Middleware resolves sessions and enforces permissions on write paths.
type Middleware struct {
	verifier *Verifier
	policy   Policy
}

// NewMiddleware creates auth middleware with the given token verifier and
// authorization policy.
func NewMiddleware(verifier *Verifier, policy Policy) *Middleware {
	return &Middleware{
		verifier: verifier,
		policy:   policy,
	}
}

// Resolve attaches a session to every request without rejecting any. The
// session is anonymous when no usable credential is present.
func (m *Middleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.resolveSession(r)
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// Require rejects requests whose session is not authenticated or whose role
// fails the policy for perm. It rejects before the handler touches the store.
func (m *Middleware) Require(perm Permission, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := m.resolveSession(r)

		if !session.Authenticated() {
			writeAuthError(w, http.StatusUnauthorized, "missing or invalid credentials")
			return
		}
		if !m.policy(session.Role, perm) {
			log.Warn().
				Str("subject", session.Subject).
				Str("role", string(session.Role)).
				Str("permission", string(perm)).
				Msg("permission denied")
			writeAuthError(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		next(w, r.WithContext(WithSession(r.Context(), session)))
	}
}

// resolveSession checks the Authorization header first, then the dashboard
// session cookie.
func (m *Middleware) resolveSession(r *http.Request) Session {
	tokenStr, ok := BearerToken(r.Header.Get("Authorization"))
	if !ok {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			tokenStr, ok = cookie.Value, true
		}
	}
	if !ok || tokenStr == "" {
		return Session{State: SessionStateAnonymous}
	}

	claims, err := m.verifier.Verify(tokenStr)
	if err != nil {
		log.Debug().Err(err).Msg("credential rejected")
		return Session{State: SessionStateAnonymous}
	}

	role := models.UserRole(claims.Role)
	if role == "" {
		role = models.UserRoleAdmin
	}
	return Session{
		State:   SessionStateAuthenticated,
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Role:    role,
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
