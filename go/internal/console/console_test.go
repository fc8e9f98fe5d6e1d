package console

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jtan/courtcast/go/internal/models"
)

// fakeStore is an in-memory Store that records every patch it receives.
type fakeStore struct {
	mu      sync.Mutex
	match   models.Match
	patches []models.MatchPatch
	failAll bool
}

func (s *fakeStore) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.match
	return &m, nil
}

func (s *fakeStore) PatchMatch(ctx context.Context, id uuid.UUID, patch models.MatchPatch) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store unavailable")
	}
	s.match = patch.Apply(s.match)
	s.patches = append(s.patches, patch)
	m := s.match
	return &m, nil
}

func (s *fakeStore) patchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patches)
}

func (s *fakeStore) patchAt(i int) models.MatchPatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patches[i]
}

func (s *fakeStore) snapshot() models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.match
}

// gatedStore blocks each PatchMatch until released, to hold a write in
// flight while the test stages more edits.
type gatedStore struct {
	fakeStore
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) PatchMatch(ctx context.Context, id uuid.UUID, patch models.MatchPatch) (*models.Match, error) {
	s.entered <- struct{}{}
	<-s.release
	return s.fakeStore.PatchMatch(ctx, id, patch)
}

func newTestConsole(t *testing.T, store Store, cfg Config) (*Console, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	matchID := uuid.New()
	c := New(store, clock, matchID, cfg)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(c.Close)
	return c, clock
}

// waitUntil polls cond; the debounce callback runs on the fake clock's timer
// goroutine, so assertions after Advance need a settle point.
func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met within 2s")
}

func TestDebounceCoalescesRapidTaps(t *testing.T) {
	store := &fakeStore{match: models.Match{Status: models.MatchStatusLive}}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := c.AddScore(ctx, 1, 1); err != nil {
			t.Fatalf("AddScore failed: %v", err)
		}
	}

	// The UI sees every tap immediately.
	if got := c.Snapshot().Player1.Score; got != 5 {
		t.Errorf("local score = %d before flush, want 5", got)
	}
	// Nothing has hit the store inside the window.
	if n := store.patchCount(); n != 0 {
		t.Fatalf("store received %d patches before the window expired, want 0", n)
	}

	clock.Advance(defaultDebounceWindow)
	waitUntil(t, func() bool { return store.patchCount() == 1 && !c.Pending() })

	patch := store.patchAt(0)
	if patch.Player1 == nil || patch.Player1.Score == nil || *patch.Player1.Score != 5 {
		t.Errorf("flushed patch = %+v, want single write carrying score 5", patch)
	}
	if got := store.snapshot().Player1.Score; got != 5 {
		t.Errorf("store score = %d, want 5", got)
	}
}

func TestDebounceWindowRestartsPerTap(t *testing.T) {
	store := &fakeStore{}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	if err := c.AddScore(ctx, 1, 1); err != nil {
		t.Fatal(err)
	}
	clock.Advance(300 * time.Millisecond)

	// Second tap restarts the window; the original deadline passing must not
	// trigger a write.
	if err := c.AddScore(ctx, 1, 1); err != nil {
		t.Fatal(err)
	}
	clock.Advance(300 * time.Millisecond)
	if n := store.patchCount(); n != 0 {
		t.Fatalf("store received %d patches 300ms into the restarted window, want 0", n)
	}

	clock.Advance(200 * time.Millisecond)
	waitUntil(t, func() bool { return store.patchCount() == 1 })

	patch := store.patchAt(0)
	if *patch.Player1.Score != 2 {
		t.Errorf("flushed score = %d, want 2", *patch.Player1.Score)
	}
}

func TestTransitionsBypassDebounce(t *testing.T) {
	store := &fakeStore{match: models.Match{Status: models.MatchStatusScheduled}}
	c, clock := newTestConsole(t, store, Config{})

	if err := c.StartTimer(context.Background()); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}

	// No clock advance: the write landed synchronously.
	if n := store.patchCount(); n != 1 {
		t.Fatalf("store received %d patches, want 1", n)
	}

	got := store.snapshot()
	if !got.IsTimerRunning {
		t.Error("IsTimerRunning = false, want true")
	}
	if got.Status != models.MatchStatusLive {
		t.Errorf("Status = %q, want live", got.Status)
	}
	if got.TimerStartTime == nil || !got.TimerStartTime.Equal(clock.Now()) {
		t.Errorf("TimerStartTime = %v, want %v", got.TimerStartTime, clock.Now())
	}
}

func TestStartTimerIdempotent(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestConsole(t, store, Config{})
	ctx := context.Background()

	if err := c.StartTimer(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.StartTimer(ctx); err != nil {
		t.Fatal(err)
	}

	if n := store.patchCount(); n != 1 {
		t.Errorf("store received %d patches after double start, want 1", n)
	}
}

func TestStopTimerFoldsElapsedExactly(t *testing.T) {
	store := &fakeStore{}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	if err := c.StartTimer(ctx); err != nil {
		t.Fatal(err)
	}
	clock.Advance(90 * time.Second)
	if err := c.StopTimer(ctx); err != nil {
		t.Fatal(err)
	}

	got := store.snapshot()
	if got.IsTimerRunning {
		t.Error("IsTimerRunning = true, want false")
	}
	if got.TimerStartTime != nil {
		t.Errorf("TimerStartTime = %v, want nil", got.TimerStartTime)
	}
	if got.TimerElapsed != 90 {
		t.Errorf("TimerElapsed = %v, want exactly 90", got.TimerElapsed)
	}

	// Stopping again is a no-op.
	if err := c.StopTimer(ctx); err != nil {
		t.Fatal(err)
	}
	if n := store.patchCount(); n != 2 {
		t.Errorf("store received %d patches after double stop, want 2", n)
	}
}

func TestRollbackRestoresServerSnapshot(t *testing.T) {
	base := models.Match{
		Player1: models.PlayerState{Name: "A", Score: 3},
		Player2: models.PlayerState{Name: "B", Score: 7},
		Status:  models.MatchStatusLive,
	}
	store := &fakeStore{match: base, failAll: true}

	var gotErr error
	c, _ := newTestConsole(t, store, Config{
		MaxRetries:   2,
		RetryBackoff: -1,
		OnError:      func(err error) { gotErr = err },
	})
	ctx := context.Background()

	if err := c.AddScore(ctx, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Player1.Score; got != 4 {
		t.Fatalf("optimistic score = %d, want 4", got)
	}

	// Force the buffered edit out through the immediate lane so the failure
	// surfaces synchronously.
	err := c.Commit(ctx, models.MatchPatch{})
	if err == nil {
		t.Fatal("Commit returned nil, want error after exhausted retries")
	}
	if gotErr == nil {
		t.Error("OnError was not called")
	}

	// Every field is back at the last acknowledged snapshot.
	if diff := cmp.Diff(base, c.Snapshot()); diff != "" {
		t.Errorf("rollback mismatch (-want +got):\n%s", diff)
	}
	if c.Pending() {
		t.Error("Pending = true after rollback, want false")
	}
}

func TestSetServingNeverLeavesTwoServers(t *testing.T) {
	store := &fakeStore{match: models.Match{
		Player1: models.PlayerState{IsServing: true},
	}}
	c, clock := newTestConsole(t, store, Config{})

	if err := c.SetServing(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	clock.Advance(defaultDebounceWindow)
	waitUntil(t, func() bool { return store.patchCount() == 1 })

	// One write names both sides.
	patch := store.patchAt(0)
	if patch.Player1 == nil || patch.Player1.IsServing == nil ||
		patch.Player2 == nil || patch.Player2.IsServing == nil {
		t.Fatalf("patch = %+v, want serve flags on both players", patch)
	}

	got := store.snapshot()
	if got.Player1.IsServing || !got.Player2.IsServing {
		t.Errorf("serving = (%v, %v), want (false, true)",
			got.Player1.IsServing, got.Player2.IsServing)
	}
}

func TestEditsDuringFlightFlushAfterwards(t *testing.T) {
	store := &gatedStore{
		// Buffered so later writes pass straight through once released.
		entered: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	court := "Court 3"
	done := make(chan error, 1)
	go func() {
		done <- c.Commit(ctx, models.MatchPatch{Court: &court})
	}()
	<-store.entered

	// The first write is in flight; this edit must buffer, not write.
	if err := c.AddScore(ctx, 2, 1); err != nil {
		t.Fatal(err)
	}
	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if n := store.patchCount(); n != 1 {
		t.Fatalf("store received %d patches while first was in flight, want 1", n)
	}

	clock.Advance(defaultDebounceWindow)
	waitUntil(t, func() bool { return store.patchCount() == 2 && !c.Pending() })

	second := store.patchAt(1)
	if second.Player2 == nil || second.Player2.Score == nil || *second.Player2.Score != 1 {
		t.Errorf("second patch = %+v, want buffered score edit", second)
	}
	if got := store.snapshot().Court; got != "Court 3" {
		t.Errorf("Court = %q, want %q", got, "Court 3")
	}
}

func TestCommitDuringFlightFlushesWithoutDebounce(t *testing.T) {
	store := &gatedStore{
		entered: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	if err := c.AddScore(ctx, 1, 1); err != nil {
		t.Fatal(err)
	}
	go clock.Advance(defaultDebounceWindow)
	<-store.entered

	// The debounced score write is in flight; a transition lands now.
	if err := c.StartTimer(ctx); err != nil {
		t.Fatal(err)
	}
	close(store.release)

	// No further clock advance: the transition must go out as soon as the
	// flight returns, not after another debounce window.
	waitUntil(t, func() bool { return store.patchCount() == 2 && !c.Pending() })

	second := store.patchAt(1)
	if second.IsTimerRunning == nil || !*second.IsTimerRunning {
		t.Errorf("second patch = %+v, want the timer transition", second)
	}
	got := store.snapshot()
	if !got.IsTimerRunning || got.Status != models.MatchStatusLive {
		t.Errorf("store match = (running=%v, status=%q), want running live", got.IsTimerRunning, got.Status)
	}
}

func TestAddScoreClampsAtZero(t *testing.T) {
	store := &fakeStore{}
	c, clock := newTestConsole(t, store, Config{})

	if err := c.AddScore(context.Background(), 1, -1); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Player1.Score; got != 0 {
		t.Errorf("local score = %d, want clamped 0", got)
	}

	clock.Advance(defaultDebounceWindow)
	waitUntil(t, func() bool { return store.patchCount() == 1 })
	if got := store.snapshot().Player1.Score; got != 0 {
		t.Errorf("store score = %d, want 0", got)
	}
}

func TestMutateBeforeLoadFails(t *testing.T) {
	c := New(&fakeStore{}, clockwork.NewFakeClock(), uuid.New(), Config{})
	if err := c.AddScore(context.Background(), 1, 1); err == nil {
		t.Error("AddScore before Load returned nil, want error")
	}
}

func TestEndToEndConsoleScenario(t *testing.T) {
	store := &fakeStore{match: models.Match{
		Player1: models.PlayerState{Name: "Chen"},
		Player2: models.PlayerState{Name: "Lee"},
		Status:  models.MatchStatusScheduled,
	}}
	c, clock := newTestConsole(t, store, Config{})
	ctx := context.Background()

	if err := c.StartTimer(ctx); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := c.AddScore(ctx, 1, 1); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := c.AddScore(ctx, 2, 1); err != nil {
			t.Fatal(err)
		}
	}

	clock.Advance(defaultDebounceWindow)
	waitUntil(t, func() bool { return store.patchCount() == 2 && !c.Pending() })

	scores := store.patchAt(1)
	if *scores.Player1.Score != 5 || *scores.Player2.Score != 2 {
		t.Errorf("flushed scores = (%d, %d), want (5, 2)",
			*scores.Player1.Score, *scores.Player2.Score)
	}

	clock.Advance(30 * time.Second)
	if err := c.StopTimer(ctx); err != nil {
		t.Fatal(err)
	}

	got := store.snapshot()
	if n := store.patchCount(); n != 3 {
		t.Errorf("store received %d patches, want 3", n)
	}
	if got.TimerElapsed != 30.5 {
		t.Errorf("TimerElapsed = %v, want 30.5", got.TimerElapsed)
	}
	if got.IsTimerRunning || got.TimerStartTime != nil {
		t.Errorf("timer = (%v, %v), want stopped with nil start", got.IsTimerRunning, got.TimerStartTime)
	}
	if got.Player1.Score != 5 || got.Player2.Score != 2 {
		t.Errorf("scores = (%d, %d), want (5, 2)", got.Player1.Score, got.Player2.Score)
	}
	if got.Status != models.MatchStatusLive {
		t.Errorf("Status = %q, want live", got.Status)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.DebounceWindow != defaultDebounceWindow {
		t.Errorf("DebounceWindow = %v, want %v", cfg.DebounceWindow, defaultDebounceWindow)
	}
	if cfg.MaxRetries != defaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, defaultMaxRetries)
	}
	if cfg.RetryBackoff != defaultRetryBackoff {
		t.Errorf("RetryBackoff = %v, want %v", cfg.RetryBackoff, defaultRetryBackoff)
	}

	disabled := Config{RetryBackoff: -1}.withDefaults()
	if disabled.RetryBackoff != 0 {
		t.Errorf("RetryBackoff = %v with negative input, want 0", disabled.RetryBackoff)
	}
}
