package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jtan/courtcast/go/internal/models"
)

// SessionState tells a handler whether auth resolution has happened and how
// it came out. The zero value means no middleware ran, which is a bug worth
// distinguishing from a deliberate anonymous request.
type SessionState string

const (
	SessionStatePending       SessionState = ""
	SessionStateAnonymous     SessionState = "anonymous"
	SessionStateAuthenticated SessionState = "authenticated"
)

// Session is the single process-wide representation of "who is calling".
// It is resolved once per request by the middleware and injected into the
// context instead of being re-derived per handler.
type Session struct {
	State   SessionState
	Subject string
	Email   string
	Name    string
	Role    models.UserRole
}

// Authenticated reports whether the session resolved to a real user.
func (s Session) Authenticated() bool {
	return s.State == SessionStateAuthenticated
}

type sessionKey struct{}

// WithSession returns a context carrying the resolved session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session resolved for this request, or a pending
// session when no middleware ran.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(sessionKey{}).(Session); ok {
		return s
	}
	return Session{State: SessionStatePending}
}

// SessionCookieName backs the dashboard; the overlay page needs no cookie.
const SessionCookieName = "courtcast_session"

// SessionTTL is how long an issued session cookie stays valid.
const SessionTTL = 5 * 24 * time.Hour

// NewSessionCookie wraps a verified bearer token in the dashboard's httpOnly
// session cookie.
func NewSessionCookie(token string, clock clockwork.Clock) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  clock.Now().Add(SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
