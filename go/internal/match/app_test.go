package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jtan/courtcast/go/internal/models"
)

// fakeRepo is an in-memory MatchRepository with a fixed mutation clock.
type fakeRepo struct {
	matches map[uuid.UUID]models.Match
	now     time.Time
	mutates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		matches: make(map[uuid.UUID]models.Match),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepo) CreateMatch(ctx context.Context, m models.Match) (*models.Match, error) {
	m.CreatedAt = r.now
	m.UpdatedAt = r.now
	r.matches[m.ID] = m
	out := m
	return &out, nil
}

func (r *fakeRepo) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := m
	return &out, nil
}

func (r *fakeRepo) ListMatchesByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.TournamentID != nil && *m.TournamentID == tournamentID {
			cp := m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) Mutate(ctx context.Context, id uuid.UUID, fn mutateFunc) (*models.Match, error) {
	r.mutates++
	m, ok := r.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	next, _, err := fn(m, r.now)
	if err != nil {
		return nil, err
	}
	next.UpdatedAt = r.now
	r.matches[id] = next
	out := next
	return &out, nil
}

func (r *fakeRepo) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.matches[id]; !ok {
		return ErrNotFound
	}
	delete(r.matches, id)
	return nil
}

type fakeTournaments struct {
	tournament *models.Tournament
}

func (f *fakeTournaments) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	if f.tournament == nil || f.tournament.ID != id {
		return nil, errors.New("tournament not found")
	}
	return f.tournament, nil
}

type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, errors.New("user not found")
	}
	return f.user, nil
}

func newTestApp(repo *fakeRepo, t *fakeTournaments, u *fakeUsers) *App {
	if t == nil {
		t = &fakeTournaments{}
	}
	if u == nil {
		u = &fakeUsers{}
	}
	return NewApp(repo, t, u)
}

func validCreateRequest() CreateMatchRequest {
	return CreateMatchRequest{
		ID:      uuid.New(),
		Player1: models.PlayerState{Name: "Chen"},
		Player2: models.PlayerState{Name: "Lee"},
	}
}

func TestCreateMatchValidation(t *testing.T) {
	app := newTestApp(newFakeRepo(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateMatchRequest)
	}{
		{"missing id", func(r *CreateMatchRequest) { r.ID = uuid.Nil }},
		{"missing player1 name", func(r *CreateMatchRequest) { r.Player1.Name = "" }},
		{"missing player2 name", func(r *CreateMatchRequest) { r.Player2.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := app.CreateMatch(ctx, req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("err = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestCreateMatchDefaults(t *testing.T) {
	app := newTestApp(newFakeRepo(), nil, nil)

	req := validCreateRequest()
	req.Player1.Score = 99

	created, err := app.CreateMatch(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	if created.Status != models.MatchStatusScheduled {
		t.Errorf("Status = %q, want scheduled", created.Status)
	}
	if created.Player1.Score != 0 {
		t.Errorf("Player1.Score = %d, want reset to 0", created.Player1.Score)
	}
	if created.IsTimerRunning || created.TimerStartTime != nil {
		t.Error("new match has a running timer")
	}
}

func TestCreateMatchDenormalizesBranding(t *testing.T) {
	ownerID := uuid.New()
	tournamentID := uuid.New()
	tournaments := &fakeTournaments{tournament: &models.Tournament{
		ID:          tournamentID,
		OwnerID:     ownerID,
		Name:        "City Open",
		Category:    "Open",
		LogoURL:     "https://cdn/logo.png",
		ScoringType: "21x3",
	}}
	users := &fakeUsers{user: &models.User{
		ID:              ownerID,
		StreamerLogoURL: "https://cdn/streamer.png",
	}}
	app := newTestApp(newFakeRepo(), tournaments, users)

	req := validCreateRequest()
	req.TournamentID = &tournamentID

	created, err := app.CreateMatch(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	if created.TournamentName != "City Open" || created.TournamentLogoURL != "https://cdn/logo.png" {
		t.Errorf("tournament branding = (%q, %q), want denormalized",
			created.TournamentName, created.TournamentLogoURL)
	}
	if created.StreamerLogoURL != "https://cdn/streamer.png" {
		t.Errorf("StreamerLogoURL = %q, want owner's logo", created.StreamerLogoURL)
	}
	if created.ScoringType != "21x3" {
		t.Errorf("ScoringType = %q, want inherited 21x3", created.ScoringType)
	}
}

func TestCreateMatchUnknownTournamentFails(t *testing.T) {
	app := newTestApp(newFakeRepo(), nil, nil)

	req := validCreateRequest()
	id := uuid.New()
	req.TournamentID = &id

	if _, err := app.CreateMatch(context.Background(), req); err == nil {
		t.Error("CreateMatch succeeded with unknown tournament")
	}
}

func TestStartTimerConflict(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, nil, nil)
	ctx := context.Background()

	created, err := app.CreateMatch(ctx, validCreateRequest())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := app.StartTimer(ctx, created.ID)
	if err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if !updated.IsTimerRunning || updated.TimerStartTime == nil {
		t.Error("timer not running after start")
	}
	if updated.Status != models.MatchStatusLive {
		t.Errorf("Status = %q, want live", updated.Status)
	}

	if _, err := app.StartTimer(ctx, created.ID); !errors.Is(err, ErrTimerAlreadyRunning) {
		t.Errorf("second start err = %v, want ErrTimerAlreadyRunning", err)
	}
}

func TestStopTimerFoldsUnderRowClock(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, nil, nil)
	ctx := context.Background()

	created, err := app.CreateMatch(ctx, validCreateRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := app.StartTimer(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	// The repository clock moves 45s between start and stop.
	repo.now = repo.now.Add(45 * time.Second)

	updated, err := app.StopTimer(ctx, created.ID)
	if err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}
	if updated.TimerElapsed != 45 {
		t.Errorf("TimerElapsed = %v, want 45", updated.TimerElapsed)
	}
	if updated.IsTimerRunning || updated.TimerStartTime != nil {
		t.Error("timer still running after stop")
	}

	if _, err := app.StopTimer(ctx, created.ID); !errors.Is(err, ErrTimerNotRunning) {
		t.Errorf("second stop err = %v, want ErrTimerNotRunning", err)
	}
}

func TestPatchMatchZeroPatchSkipsWrite(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, nil, nil)
	ctx := context.Background()

	created, err := app.CreateMatch(ctx, validCreateRequest())
	if err != nil {
		t.Fatal(err)
	}

	got, err := app.PatchMatch(ctx, created.ID, models.MatchPatch{})
	if err != nil {
		t.Fatalf("PatchMatch failed: %v", err)
	}
	if repo.mutates != 0 {
		t.Errorf("zero patch triggered %d mutations, want 0", repo.mutates)
	}
	if got.ID != created.ID {
		t.Errorf("returned match %s, want %s", got.ID, created.ID)
	}
}

func TestPatchMatchNotFound(t *testing.T) {
	app := newTestApp(newFakeRepo(), nil, nil)

	score := 5
	patch := models.MatchPatch{Player1: &models.PlayerPatch{Score: &score}}
	if _, err := app.PatchMatch(context.Background(), uuid.New(), patch); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
