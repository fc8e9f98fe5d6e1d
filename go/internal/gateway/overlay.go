package gateway

import (
	"time"

	"github.com/jtan/courtcast/go/internal/models"
)

// OverlayMode selects which layout the overlay renders. Break takeover and
// sponsor ticker are mutually exclusive: break always wins.
type OverlayMode string

const (
	OverlayModeScoreboard OverlayMode = "scoreboard"
	OverlayModeBreak      OverlayMode = "break"
	OverlayModeSponsors   OverlayMode = "sponsors"
)

// OverlayPlayer is one side of the scoreboard.
type OverlayPlayer struct {
	Name        string `json:"name"`
	PartnerName string `json:"partnerName,omitempty"`
	Score       int    `json:"score"`
	IsServing   bool   `json:"isServing"`
}

// OverlayState is everything the OBS browser source needs to paint a frame.
// It is derived purely from a Match snapshot; clients hold no other state.
type OverlayState struct {
	// Render false tells the overlay to paint nothing at all. Sent when the
	// subscribed match does not exist or has been deleted.
	Render bool `json:"render"`

	MatchID string      `json:"matchId,omitempty"`
	Status  string      `json:"status,omitempty"`
	Mode    OverlayMode `json:"mode,omitempty"`

	Player1 OverlayPlayer `json:"player1,omitempty"`
	Player2 OverlayPlayer `json:"player2,omitempty"`

	Clock          string  `json:"clock,omitempty"`
	ElapsedSeconds float64 `json:"elapsedSeconds,omitempty"`
	IsTimerRunning bool    `json:"isTimerRunning,omitempty"`
	ServingPlayer  int     `json:"servingPlayer,omitempty"`

	TournamentName    string  `json:"tournamentName,omitempty"`
	Category          string  `json:"category,omitempty"`
	TournamentLogoURL string  `json:"tournamentLogoUrl,omitempty"`
	StreamerLogoURL   string  `json:"streamerLogoUrl,omitempty"`
	OverlayScale      float64 `json:"overlayScale,omitempty"`

	ShowTournamentLogo bool `json:"showTournamentLogo"`
	ShowStreamerLogo   bool `json:"showStreamerLogo"`
	ShowMatchInfo      bool `json:"showMatchInfo"`

	MatchType   string `json:"matchType,omitempty"`
	AgeGroup    string `json:"ageGroup,omitempty"`
	Court       string `json:"court,omitempty"`
	RoundType   string `json:"roundType,omitempty"`
	ScoringType string `json:"scoringType,omitempty"`
}

// HiddenOverlayState is the render-nothing state for subscriptions to a match
// that does not exist.
func HiddenOverlayState() OverlayState {
	return OverlayState{Render: false}
}

// DeriveOverlayState computes the overlay document for a match at the given
// instant. Visibility toggles default to shown when absent.
func DeriveOverlayState(m models.Match, now time.Time) OverlayState {
	elapsed := m.ElapsedSeconds(now)

	mode := OverlayModeScoreboard
	switch {
	case m.Status == models.MatchStatusBreak:
		mode = OverlayModeBreak
	case m.IsSponsorsOverlayActive:
		mode = OverlayModeSponsors
	}

	scale := m.OverlayScale
	if scale <= 0 {
		scale = 1.0
	}

	return OverlayState{
		Render:  true,
		MatchID: m.ID.String(),
		Status:  string(m.Status),
		Mode:    mode,

		Player1: overlayPlayer(m.Player1),
		Player2: overlayPlayer(m.Player2),

		Clock:          models.FormatClock(elapsed),
		ElapsedSeconds: elapsed,
		IsTimerRunning: m.IsTimerRunning,
		ServingPlayer:  m.ServingPlayer(),

		TournamentName:    m.TournamentName,
		Category:          m.Category,
		TournamentLogoURL: m.TournamentLogoURL,
		StreamerLogoURL:   m.StreamerLogoURL,
		OverlayScale:      scale,

		ShowTournamentLogo: models.Visible(m.ShowTournamentLogo),
		ShowStreamerLogo:   models.Visible(m.ShowStreamerLogo),
		ShowMatchInfo:      models.Visible(m.ShowMatchInfo),

		MatchType:   string(m.MatchType),
		AgeGroup:    m.AgeGroup,
		Court:       m.Court,
		RoundType:   m.RoundType,
		ScoringType: m.ScoringType,
	}
}

func overlayPlayer(p models.PlayerState) OverlayPlayer {
	return OverlayPlayer{
		Name:        p.Name,
		PartnerName: p.PartnerName,
		Score:       p.Score,
		IsServing:   p.IsServing,
	}
}
