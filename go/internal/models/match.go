package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// MatchStatus defines the lifecycle status of a match. The set is open: the
// known values below are what the console writes, but readers must tolerate
// unknown strings.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusBreak     MatchStatus = "break"
	MatchStatusCompleted MatchStatus = "completed"
)

// MatchType defines the discipline of a match.
type MatchType string

const (
	MatchTypeSingles MatchType = "SINGLES"
	MatchTypeDoubles MatchType = "DOUBLES"
	MatchTypeMixed   MatchType = "MIXED"
)

// PlayerState holds the live scoring state for one side of the court.
type PlayerState struct {
	Name        string `json:"name"`
	PartnerName string `json:"partnerName,omitempty"`
	Score       int    `json:"score"`
	IsServing   bool   `json:"isServing"`
}

// Match is the central live document. The console is its only writer; the
// overlay gateway and every dashboard page derive display state from it.
//
// Timer invariant: TimerStartTime is non-nil iff IsTimerRunning is true.
// TimerElapsed is the accumulated duration in seconds while the timer is
// stopped; the running delta is folded into it on every stop transition.
type Match struct {
	ID           uuid.UUID   `json:"id"`
	TournamentID *uuid.UUID  `json:"tournamentId,omitempty"`
	Player1      PlayerState `json:"player1"`
	Player2      PlayerState `json:"player2"`
	Status       MatchStatus `json:"status"`

	IsTimerRunning bool       `json:"isTimerRunning"`
	TimerStartTime *time.Time `json:"timerStartTime,omitempty"`
	TimerElapsed   float64    `json:"timerElapsed"`

	// Branding denormalized from the owning tournament and user so the
	// overlay renders from this single document.
	TournamentName          string  `json:"tournamentName,omitempty"`
	Category                string  `json:"category,omitempty"`
	TournamentLogoURL       string  `json:"tournamentLogoUrl,omitempty"`
	StreamerLogoURL         string  `json:"streamerLogoUrl,omitempty"`
	OverlayScale            float64 `json:"overlayScale,omitempty"`
	ShowTournamentLogo      *bool   `json:"showTournamentLogo,omitempty"`
	ShowStreamerLogo        *bool   `json:"showStreamerLogo,omitempty"`
	ShowMatchInfo           *bool   `json:"showMatchInfo,omitempty"`
	IsSponsorsOverlayActive bool    `json:"isSponsorsOverlayActive"`

	MatchType   MatchType `json:"matchType,omitempty"`
	AgeGroup    string    `json:"ageGroup,omitempty"`
	Court       string    `json:"court,omitempty"`
	RoundType   string    `json:"roundType,omitempty"`
	ScoringType string    `json:"scoringType,omitempty"` // point target x best-of, e.g. "21x3"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ElapsedSeconds computes the displayed elapsed time at now. Pure arithmetic,
// called on a short interval by every display surface to animate the clock.
// Clock skew can make the delta negative; that and NaN clamp to zero.
func (m *Match) ElapsedSeconds(now time.Time) float64 {
	elapsed := m.TimerElapsed
	if m.IsTimerRunning && m.TimerStartTime != nil {
		elapsed += now.Sub(*m.TimerStartTime).Seconds()
	}
	if math.IsNaN(elapsed) || elapsed < 0 {
		return 0
	}
	return elapsed
}

// FormatClock renders elapsed seconds as a zero-padded mm:ss clock.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ServingPlayer returns 1 or 2 for whichever side holds serve, or 0 when
// neither is marked serving.
func (m *Match) ServingPlayer() int {
	switch {
	case m.Player1.IsServing:
		return 1
	case m.Player2.IsServing:
		return 2
	default:
		return 0
	}
}

// Visible interprets an optional visibility toggle. Absence means shown; only
// an explicit false hides the element.
func Visible(flag *bool) bool {
	return flag == nil || *flag
}
