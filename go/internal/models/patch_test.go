package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string              { return &s }
func intPtr(i int) *int                    { return &i }
func boolPtr(b bool) *bool                 { return &b }
func f64Ptr(f float64) *float64            { return &f }
func statusPtr(s MatchStatus) *MatchStatus { return &s }

func TestMergeLastWriterWinsPerField(t *testing.T) {
	base := MatchPatch{
		Player1: &PlayerPatch{Score: intPtr(3)},
		Court:   strPtr("Court 1"),
	}
	next := MatchPatch{
		Player1: &PlayerPatch{Score: intPtr(5)},
		Status:  statusPtr(MatchStatusLive),
	}

	got := base.Merge(next)
	want := MatchPatch{
		Player1: &PlayerPatch{Score: intPtr(5)},
		Court:   strPtr("Court 1"),
		Status:  statusPtr(MatchStatusLive),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePlayerSubPatchesMergeFieldByField(t *testing.T) {
	// A buffered score change and a later serve toggle on the same player
	// must both survive in the combined patch.
	base := MatchPatch{Player1: &PlayerPatch{Score: intPtr(7)}}
	next := MatchPatch{Player1: &PlayerPatch{IsServing: boolPtr(true)}}

	got := base.Merge(next)
	want := MatchPatch{Player1: &PlayerPatch{
		Score:     intPtr(7),
		IsServing: boolPtr(true),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	base := MatchPatch{Player1: &PlayerPatch{Score: intPtr(1)}}
	base.Merge(MatchPatch{Player1: &PlayerPatch{Score: intPtr(9)}})

	if *base.Player1.Score != 1 {
		t.Errorf("receiver mutated: Player1.Score = %d, want 1", *base.Player1.Score)
	}
}

func TestApplyClampsScoreAtZero(t *testing.T) {
	m := Match{Player1: PlayerState{Score: 0}}
	p := MatchPatch{Player1: &PlayerPatch{Score: intPtr(-1)}}

	got := p.Apply(m)
	if got.Player1.Score != 0 {
		t.Errorf("Player1.Score = %d, want 0", got.Player1.Score)
	}
}

func TestApplyServeExclusivity(t *testing.T) {
	m := Match{
		Player1: PlayerState{Name: "A", IsServing: true},
		Player2: PlayerState{Name: "B"},
	}

	// Granting serve to player 2 revokes it from player 1 even though the
	// patch never names player 1.
	p := MatchPatch{Player2: &PlayerPatch{IsServing: boolPtr(true)}}
	got := p.Apply(m)

	if got.Player1.IsServing {
		t.Error("Player1.IsServing = true after serve moved to player 2")
	}
	if !got.Player2.IsServing {
		t.Error("Player2.IsServing = false, want true")
	}
}

func TestApplyServeExplicitBothSides(t *testing.T) {
	m := Match{Player2: PlayerState{IsServing: true}}
	p := MatchPatch{
		Player1: &PlayerPatch{IsServing: boolPtr(true)},
		Player2: &PlayerPatch{IsServing: boolPtr(false)},
	}

	got := p.Apply(m)
	if !got.Player1.IsServing || got.Player2.IsServing {
		t.Errorf("serving = (%v, %v), want (true, false)",
			got.Player1.IsServing, got.Player2.IsServing)
	}
}

func TestApplyTimerStopClearsStartTime(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := Match{
		IsTimerRunning: true,
		TimerStartTime: &start,
		TimerElapsed:   10,
	}

	p := MatchPatch{
		IsTimerRunning: boolPtr(false),
		TimerElapsed:   f64Ptr(42),
	}
	got := p.Apply(m)

	if got.IsTimerRunning {
		t.Error("IsTimerRunning = true, want false")
	}
	if got.TimerStartTime != nil {
		t.Errorf("TimerStartTime = %v, want nil once stopped", got.TimerStartTime)
	}
	if got.TimerElapsed != 42 {
		t.Errorf("TimerElapsed = %v, want 42", got.TimerElapsed)
	}
}

func TestApplyPartialLeavesOtherFieldsUntouched(t *testing.T) {
	m := Match{
		Player1:        PlayerState{Name: "A", Score: 11},
		Player2:        PlayerState{Name: "B", Score: 9},
		Status:         MatchStatusLive,
		TournamentName: "City Open",
	}

	p := MatchPatch{Player2: &PlayerPatch{Score: intPtr(10)}}
	got := p.Apply(m)

	want := m
	want.Player2.Score = 10
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyVisibilityTogglesCopyPointers(t *testing.T) {
	hide := false
	p := MatchPatch{ShowMatchInfo: &hide}
	got := p.Apply(Match{})

	if got.ShowMatchInfo == nil || *got.ShowMatchInfo {
		t.Fatalf("ShowMatchInfo = %v, want explicit false", got.ShowMatchInfo)
	}

	// Apply must snapshot the value, not alias the caller's pointer.
	hide = true
	if *got.ShowMatchInfo {
		t.Error("applied match aliases the patch's pointer")
	}
}

func TestIsZero(t *testing.T) {
	if !(MatchPatch{}).IsZero() {
		t.Error("empty patch: IsZero = false, want true")
	}
	if (MatchPatch{Court: strPtr("1")}).IsZero() {
		t.Error("non-empty patch: IsZero = true, want false")
	}
}
