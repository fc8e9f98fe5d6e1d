package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jtan/courtcast/go/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth0|abc123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:  "organizer",
		Email: "op@example.com",
		Name:  "Op Erator",
	}
}

func TestVerifierAcceptsValidToken(t *testing.T) {
	v := NewVerifier(testSecret)

	claims, err := v.Verify(signToken(t, validClaims()))
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "auth0|abc123" {
		t.Errorf("Subject = %q, want auth0|abc123", claims.Subject)
	}
	if claims.Email != "op@example.com" {
		t.Errorf("Email = %q, want op@example.com", claims.Email)
	}
}

func TestVerifierRejectsWrongSecret(t *testing.T) {
	v := NewVerifier("other-secret")
	if _, err := v.Verify(signToken(t, validClaims())); err == nil {
		t.Error("Verify accepted a token signed with a different secret")
	}
}

func TestVerifierRejectsExpiredToken(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	if _, err := v.Verify(signToken(t, claims)); err == nil {
		t.Error("Verify accepted an expired token")
	}
}

func TestVerifierRejectsMissingSubject(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	claims.Subject = ""

	if _, err := v.Verify(signToken(t, claims)); err == nil {
		t.Error("Verify accepted a token with no subject")
	}
}

func TestBearerToken(t *testing.T) {
	if tok, ok := BearerToken("Bearer abc"); !ok || tok != "abc" {
		t.Errorf("BearerToken = (%q, %v), want (abc, true)", tok, ok)
	}
	if _, ok := BearerToken("Basic abc"); ok {
		t.Error("BearerToken accepted a Basic header")
	}
	if _, ok := BearerToken(""); ok {
		t.Error("BearerToken accepted an empty header")
	}
}

func TestFromContextDefaultsToPending(t *testing.T) {
	s := FromContext(context.Background())
	if s.State != SessionStatePending {
		t.Errorf("State = %q with no middleware, want pending", s.State)
	}
	if s.Authenticated() {
		t.Error("Authenticated = true for pending session")
	}
}

func TestRoleBasedPolicy(t *testing.T) {
	tests := []struct {
		role models.UserRole
		perm Permission
		want bool
	}{
		{models.UserRoleAdmin, PermissionManageUsers, true},
		{models.UserRoleAdmin, PermissionManageMatches, true},
		{models.UserRoleOrganizer, PermissionManageMatches, true},
		{models.UserRoleOrganizer, PermissionManageSponsors, true},
		{models.UserRoleOrganizer, PermissionManageUsers, false},
		{models.UserRole("viewer"), PermissionManageMatches, false},
		{models.UserRole(""), PermissionManageMatches, false},
	}
	for _, tt := range tests {
		if got := RoleBased(tt.role, tt.perm); got != tt.want {
			t.Errorf("RoleBased(%q, %q) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestRequireRejectsAnonymous(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), AllowAuthenticated)
	handler := m.Require(PermissionManageMatches, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran for anonymous request")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/matches", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRejectsInsufficientRole(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), RoleBased)
	handler := m.Require(PermissionManageUsers, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran despite failing policy")
	})

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims()))

	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequirePassesSessionToHandler(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), AllowAuthenticated)

	var got Session
	handler := m.Require(PermissionManageMatches, func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/matches", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims()))

	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if !got.Authenticated() {
		t.Error("session not authenticated inside handler")
	}
	if got.Subject != "auth0|abc123" || got.Role != models.UserRoleOrganizer {
		t.Errorf("session = %+v, want subject auth0|abc123 role organizer", got)
	}
}

func TestRequireAcceptsSessionCookie(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), AllowAuthenticated)
	handler := m.Require(PermissionManageMatches, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/matches", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signToken(t, validClaims())})

	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestResolveAttachesAnonymousWithoutRejecting(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), AllowAuthenticated)

	var got Session
	handler := m.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got.State != SessionStateAnonymous {
		t.Errorf("State = %q, want anonymous", got.State)
	}
}

func TestDefaultRoleIsAdmin(t *testing.T) {
	m := NewMiddleware(NewVerifier(testSecret), AllowAuthenticated)

	claims := validClaims()
	claims.Role = ""
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))

	var got Session
	handler := m.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.Role != models.UserRoleAdmin {
		t.Errorf("Role = %q for token without role claim, want admin", got.Role)
	}
}
