package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jtan/courtcast/go/internal/models"
)

func TestAPIClientGetMatch(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/matches/"+id.String() {
			t.Errorf("request = %s %s, want GET /matches/%s", r.Method, r.URL.Path, id)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		json.NewEncoder(w).Encode(models.Match{ID: id, Status: models.MatchStatusLive})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "tok", nil)
	m, err := client.GetMatch(context.Background(), id)
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if m.ID != id || m.Status != models.MatchStatusLive {
		t.Errorf("match = %+v, want id %s status live", m, id)
	}
}

func TestAPIClientPatchMatch(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/matches/"+id.String() {
			t.Errorf("request = %s %s, want PATCH /matches/%s", r.Method, r.URL.Path, id)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var patch models.MatchPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			t.Fatalf("failed to decode patch: %v", err)
		}
		if patch.Player1 == nil || patch.Player1.Score == nil || *patch.Player1.Score != 7 {
			t.Errorf("patch = %+v, want player1 score 7", patch)
		}

		json.NewEncoder(w).Encode(models.Match{
			ID:      id,
			Player1: models.PlayerState{Score: 7},
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "tok", nil)
	score := 7
	m, err := client.PatchMatch(context.Background(), id, models.MatchPatch{
		Player1: &models.PlayerPatch{Score: &score},
	})
	if err != nil {
		t.Fatalf("PatchMatch failed: %v", err)
	}
	if m.Player1.Score != 7 {
		t.Errorf("score = %d, want 7", m.Player1.Score)
	}
}

func TestAPIClientSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "tok", nil)
	if _, err := client.GetMatch(context.Background(), uuid.New()); err == nil {
		t.Error("GetMatch returned nil for a 404 response")
	}
}

func TestConsoleAgainstAPIClient(t *testing.T) {
	// The queue's production store is the REST client; drive a full
	// load-and-commit round trip through it.
	id := uuid.New()
	stored := models.Match{ID: id, Status: models.MatchStatusScheduled}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(stored)
		case http.MethodPatch:
			var patch models.MatchPatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				t.Fatalf("failed to decode patch: %v", err)
			}
			stored = patch.Apply(stored)
			json.NewEncoder(w).Encode(stored)
		}
	}))
	defer srv.Close()

	c := New(NewAPIClient(srv.URL, "tok", nil), clockwork.NewFakeClock(), id, Config{})
	defer c.Close()

	ctx := context.Background()
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := c.StartTimer(ctx); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}

	if stored.Status != models.MatchStatusLive || !stored.IsTimerRunning {
		t.Errorf("server match = %+v, want live with running timer", stored)
	}
}
