package gateway

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/jtan/courtcast/go/internal/models"
)

func TestDeriveOverlayStateScoreboard(t *testing.T) {
	id := uuid.New()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := models.Match{
		ID:      id,
		Player1: models.PlayerState{Name: "Chen", Score: 11, IsServing: true},
		Player2: models.PlayerState{Name: "Lee", Score: 9},
		Status:  models.MatchStatusLive,

		IsTimerRunning: true,
		TimerStartTime: &start,
		TimerElapsed:   60,

		TournamentName: "City Open",
		Category:       "MS",
		OverlayScale:   1.25,
		MatchType:      models.MatchTypeSingles,
		Court:          "1",
	}

	got := DeriveOverlayState(m, start.Add(5*time.Second))
	want := OverlayState{
		Render:  true,
		MatchID: id.String(),
		Status:  "live",
		Mode:    OverlayModeScoreboard,

		Player1: OverlayPlayer{Name: "Chen", Score: 11, IsServing: true},
		Player2: OverlayPlayer{Name: "Lee", Score: 9},

		Clock:          "01:05",
		ElapsedSeconds: 65,
		IsTimerRunning: true,
		ServingPlayer:  1,

		TournamentName: "City Open",
		Category:       "MS",
		OverlayScale:   1.25,

		ShowTournamentLogo: true,
		ShowStreamerLogo:   true,
		ShowMatchInfo:      true,

		MatchType: "SINGLES",
		Court:     "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeriveOverlayState mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveOverlayStateModePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		status  models.MatchStatus
		sponsor bool
		want    OverlayMode
	}{
		{"live scoreboard", models.MatchStatusLive, false, OverlayModeScoreboard},
		{"sponsor ticker", models.MatchStatusLive, true, OverlayModeSponsors},
		{"break takeover", models.MatchStatusBreak, false, OverlayModeBreak},
		{"break beats sponsors", models.MatchStatusBreak, true, OverlayModeBreak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.Match{
				Status:                  tt.status,
				IsSponsorsOverlayActive: tt.sponsor,
			}
			if got := DeriveOverlayState(m, time.Now()).Mode; got != tt.want {
				t.Errorf("Mode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveOverlayStateVisibilityDefaults(t *testing.T) {
	hide := false
	m := models.Match{ShowStreamerLogo: &hide}

	got := DeriveOverlayState(m, time.Now())
	if !got.ShowTournamentLogo {
		t.Error("ShowTournamentLogo = false with no toggle, want shown by default")
	}
	if got.ShowStreamerLogo {
		t.Error("ShowStreamerLogo = true with explicit false, want hidden")
	}
	if !got.ShowMatchInfo {
		t.Error("ShowMatchInfo = false with no toggle, want shown by default")
	}
}

func TestDeriveOverlayStateScaleDefaultsToOne(t *testing.T) {
	got := DeriveOverlayState(models.Match{}, time.Now())
	if got.OverlayScale != 1.0 {
		t.Errorf("OverlayScale = %v with zero input, want 1.0", got.OverlayScale)
	}
}

func TestHiddenOverlayStateRendersNothing(t *testing.T) {
	got := HiddenOverlayState()
	if got.Render {
		t.Error("Render = true, want false")
	}
	if got.MatchID != "" {
		t.Errorf("MatchID = %q, want empty", got.MatchID)
	}
}
