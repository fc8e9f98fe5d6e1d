package console

import (
	"context"
	"fmt"

	"github.com/jtan/courtcast/go/internal/models"
)

// AddScore adjusts one player's score by delta, clamped at zero. Rapid taps
// coalesce into a single write carrying the net score.
func (c *Console) AddScore(ctx context.Context, player int, delta int) error {
	c.mu.Lock()
	var current int
	switch player {
	case 1:
		current = c.local.Player1.Score
	case 2:
		current = c.local.Player2.Score
	default:
		c.mu.Unlock()
		return fmt.Errorf("invalid player %d", player)
	}
	c.mu.Unlock()

	next := current + delta
	if next < 0 {
		next = 0
	}
	return c.Stage(ctx, playerPatch(player, models.PlayerPatch{Score: &next}))
}

// SetServing grants the serve to one player; the patch names both sides so a
// single update can never leave two servers.
func (c *Console) SetServing(ctx context.Context, player int) error {
	if player != 1 && player != 2 {
		return fmt.Errorf("invalid player %d", player)
	}
	one := player == 1
	two := player == 2
	return c.Stage(ctx, models.MatchPatch{
		Player1: &models.PlayerPatch{IsServing: &one},
		Player2: &models.PlayerPatch{IsServing: &two},
	})
}

// SetPlayerName updates one side's name line.
func (c *Console) SetPlayerName(ctx context.Context, player int, name string) error {
	if player != 1 && player != 2 {
		return fmt.Errorf("invalid player %d", player)
	}
	return c.Stage(ctx, playerPatch(player, models.PlayerPatch{Name: &name}))
}

// SetPartnerName updates one side's doubles partner line.
func (c *Console) SetPartnerName(ctx context.Context, player int, name string) error {
	if player != 1 && player != 2 {
		return fmt.Errorf("invalid player %d", player)
	}
	return c.Stage(ctx, playerPatch(player, models.PlayerPatch{PartnerName: &name}))
}

// UpdateDisplay stages arbitrary branding and metadata edits.
func (c *Console) UpdateDisplay(ctx context.Context, patch models.MatchPatch) error {
	return c.Stage(ctx, patch)
}

// StartTimer begins the match clock and moves the match live. Transition
// class: flushed immediately.
func (c *Console) StartTimer(ctx context.Context) error {
	c.mu.Lock()
	if c.local.IsTimerRunning {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	running := true
	now := c.clock.Now()
	live := models.MatchStatusLive
	return c.Commit(ctx, models.MatchPatch{
		IsTimerRunning: &running,
		TimerStartTime: &now,
		Status:         &live,
	})
}

// StopTimer folds the running delta into timerElapsed and halts the clock.
func (c *Console) StopTimer(ctx context.Context) error {
	c.mu.Lock()
	if !c.local.IsTimerRunning {
		c.mu.Unlock()
		return nil
	}
	elapsed := c.local.ElapsedSeconds(c.clock.Now())
	c.mu.Unlock()

	stopped := false
	return c.Commit(ctx, models.MatchPatch{
		IsTimerRunning: &stopped,
		TimerElapsed:   &elapsed,
	})
}

// ToggleBreak flips between break and live.
func (c *Console) ToggleBreak(ctx context.Context) error {
	c.mu.Lock()
	next := models.MatchStatusBreak
	if c.local.Status == models.MatchStatusBreak {
		next = models.MatchStatusLive
	}
	c.mu.Unlock()

	return c.Commit(ctx, models.MatchPatch{Status: &next})
}

// SwapSides exchanges the two player records wholesale, for when the players
// change court ends.
func (c *Console) SwapSides(ctx context.Context) error {
	c.mu.Lock()
	p1 := fullPlayerPatch(c.local.Player2)
	p2 := fullPlayerPatch(c.local.Player1)
	c.mu.Unlock()

	return c.Commit(ctx, models.MatchPatch{Player1: p1, Player2: p2})
}

// EndMatch stops the clock if needed and marks the match completed.
func (c *Console) EndMatch(ctx context.Context) error {
	c.mu.Lock()
	patch := models.MatchPatch{}
	completed := models.MatchStatusCompleted
	patch.Status = &completed
	if c.local.IsTimerRunning {
		elapsed := c.local.ElapsedSeconds(c.clock.Now())
		stopped := false
		patch.IsTimerRunning = &stopped
		patch.TimerElapsed = &elapsed
	}
	c.mu.Unlock()

	return c.Commit(ctx, patch)
}

func playerPatch(player int, p models.PlayerPatch) models.MatchPatch {
	if player == 1 {
		return models.MatchPatch{Player1: &p}
	}
	return models.MatchPatch{Player2: &p}
}

func fullPlayerPatch(ps models.PlayerState) *models.PlayerPatch {
	name := ps.Name
	partner := ps.PartnerName
	score := ps.Score
	serving := ps.IsServing
	return &models.PlayerPatch{
		Name:        &name,
		PartnerName: &partner,
		Score:       &score,
		IsServing:   &serving,
	}
}
