package models

import "time"

// PlayerPatch is a partial update to one PlayerState. Nil fields are left
// untouched so a pending score change and a pending serve toggle on the same
// player never clobber each other.
type PlayerPatch struct {
	Name        *string `json:"name,omitempty"`
	PartnerName *string `json:"partnerName,omitempty"`
	Score       *int    `json:"score,omitempty"`
	IsServing   *bool   `json:"isServing,omitempty"`
}

// MatchPatch is a partial update to a Match. Top-level fields merge shallowly;
// the two player sub-objects merge field-by-field.
type MatchPatch struct {
	Player1 *PlayerPatch `json:"player1,omitempty"`
	Player2 *PlayerPatch `json:"player2,omitempty"`
	Status  *MatchStatus `json:"status,omitempty"`

	IsTimerRunning *bool      `json:"isTimerRunning,omitempty"`
	TimerStartTime *time.Time `json:"timerStartTime,omitempty"`
	TimerElapsed   *float64   `json:"timerElapsed,omitempty"`

	TournamentName          *string  `json:"tournamentName,omitempty"`
	Category                *string  `json:"category,omitempty"`
	TournamentLogoURL       *string  `json:"tournamentLogoUrl,omitempty"`
	StreamerLogoURL         *string  `json:"streamerLogoUrl,omitempty"`
	OverlayScale            *float64 `json:"overlayScale,omitempty"`
	ShowTournamentLogo      *bool    `json:"showTournamentLogo,omitempty"`
	ShowStreamerLogo        *bool    `json:"showStreamerLogo,omitempty"`
	ShowMatchInfo           *bool    `json:"showMatchInfo,omitempty"`
	IsSponsorsOverlayActive *bool    `json:"isSponsorsOverlayActive,omitempty"`

	MatchType   *MatchType `json:"matchType,omitempty"`
	AgeGroup    *string    `json:"ageGroup,omitempty"`
	Court       *string    `json:"court,omitempty"`
	RoundType   *string    `json:"roundType,omitempty"`
	ScoringType *string    `json:"scoringType,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p MatchPatch) IsZero() bool {
	return p == MatchPatch{}
}

// Merge layers next on top of p and returns the combined patch. Player
// sub-patches merge field-by-field; everything else is replaced when next
// carries the field.
func (p MatchPatch) Merge(next MatchPatch) MatchPatch {
	out := p
	out.Player1 = mergePlayerPatch(p.Player1, next.Player1)
	out.Player2 = mergePlayerPatch(p.Player2, next.Player2)

	if next.Status != nil {
		out.Status = next.Status
	}
	if next.IsTimerRunning != nil {
		out.IsTimerRunning = next.IsTimerRunning
	}
	if next.TimerStartTime != nil {
		out.TimerStartTime = next.TimerStartTime
	}
	if next.TimerElapsed != nil {
		out.TimerElapsed = next.TimerElapsed
	}
	if next.TournamentName != nil {
		out.TournamentName = next.TournamentName
	}
	if next.Category != nil {
		out.Category = next.Category
	}
	if next.TournamentLogoURL != nil {
		out.TournamentLogoURL = next.TournamentLogoURL
	}
	if next.StreamerLogoURL != nil {
		out.StreamerLogoURL = next.StreamerLogoURL
	}
	if next.OverlayScale != nil {
		out.OverlayScale = next.OverlayScale
	}
	if next.ShowTournamentLogo != nil {
		out.ShowTournamentLogo = next.ShowTournamentLogo
	}
	if next.ShowStreamerLogo != nil {
		out.ShowStreamerLogo = next.ShowStreamerLogo
	}
	if next.ShowMatchInfo != nil {
		out.ShowMatchInfo = next.ShowMatchInfo
	}
	if next.IsSponsorsOverlayActive != nil {
		out.IsSponsorsOverlayActive = next.IsSponsorsOverlayActive
	}
	if next.MatchType != nil {
		out.MatchType = next.MatchType
	}
	if next.AgeGroup != nil {
		out.AgeGroup = next.AgeGroup
	}
	if next.Court != nil {
		out.Court = next.Court
	}
	if next.RoundType != nil {
		out.RoundType = next.RoundType
	}
	if next.ScoringType != nil {
		out.ScoringType = next.ScoringType
	}
	return out
}

func mergePlayerPatch(base, next *PlayerPatch) *PlayerPatch {
	if next == nil {
		return base
	}
	if base == nil {
		cp := *next
		return &cp
	}
	out := *base
	if next.Name != nil {
		out.Name = next.Name
	}
	if next.PartnerName != nil {
		out.PartnerName = next.PartnerName
	}
	if next.Score != nil {
		out.Score = next.Score
	}
	if next.IsServing != nil {
		out.IsServing = next.IsServing
	}
	return &out
}

// Apply merges the patch into a copy of m and returns it. Scores clamp at
// zero, serve toggles stay mutually exclusive, and TimerStartTime is forced
// to nil whenever the timer ends up stopped.
func (p MatchPatch) Apply(m Match) Match {
	out := m
	applyPlayerPatch(&out.Player1, p.Player1)
	applyPlayerPatch(&out.Player2, p.Player2)

	// Serve exclusivity: granting serve to one side revokes it from the other
	// even when the patch only names one player.
	if p.Player1 != nil && p.Player1.IsServing != nil && *p.Player1.IsServing {
		if p.Player2 == nil || p.Player2.IsServing == nil {
			out.Player2.IsServing = false
		}
	}
	if p.Player2 != nil && p.Player2.IsServing != nil && *p.Player2.IsServing {
		if p.Player1 == nil || p.Player1.IsServing == nil {
			out.Player1.IsServing = false
		}
	}

	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.IsTimerRunning != nil {
		out.IsTimerRunning = *p.IsTimerRunning
	}
	if p.TimerStartTime != nil {
		t := *p.TimerStartTime
		out.TimerStartTime = &t
	}
	if p.TimerElapsed != nil {
		out.TimerElapsed = *p.TimerElapsed
	}
	if !out.IsTimerRunning {
		out.TimerStartTime = nil
	}

	if p.TournamentName != nil {
		out.TournamentName = *p.TournamentName
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.TournamentLogoURL != nil {
		out.TournamentLogoURL = *p.TournamentLogoURL
	}
	if p.StreamerLogoURL != nil {
		out.StreamerLogoURL = *p.StreamerLogoURL
	}
	if p.OverlayScale != nil {
		out.OverlayScale = *p.OverlayScale
	}
	if p.ShowTournamentLogo != nil {
		v := *p.ShowTournamentLogo
		out.ShowTournamentLogo = &v
	}
	if p.ShowStreamerLogo != nil {
		v := *p.ShowStreamerLogo
		out.ShowStreamerLogo = &v
	}
	if p.ShowMatchInfo != nil {
		v := *p.ShowMatchInfo
		out.ShowMatchInfo = &v
	}
	if p.IsSponsorsOverlayActive != nil {
		out.IsSponsorsOverlayActive = *p.IsSponsorsOverlayActive
	}
	if p.MatchType != nil {
		out.MatchType = *p.MatchType
	}
	if p.AgeGroup != nil {
		out.AgeGroup = *p.AgeGroup
	}
	if p.Court != nil {
		out.Court = *p.Court
	}
	if p.RoundType != nil {
		out.RoundType = *p.RoundType
	}
	if p.ScoringType != nil {
		out.ScoringType = *p.ScoringType
	}
	return out
}

func applyPlayerPatch(ps *PlayerState, p *PlayerPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		ps.Name = *p.Name
	}
	if p.PartnerName != nil {
		ps.PartnerName = *p.PartnerName
	}
	if p.Score != nil {
		ps.Score = *p.Score
		if ps.Score < 0 {
			ps.Score = 0
		}
	}
	if p.IsServing != nil {
		ps.IsServing = *p.IsServing
	}
}
