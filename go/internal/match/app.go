package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/match/events"
	"github.com/jtan/courtcast/go/internal/models"
)

// MatchRepository defines what the match app layer needs from the repository
type MatchRepository interface {
	CreateMatch(ctx context.Context, m models.Match) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Match, error)
	Mutate(ctx context.Context, id uuid.UUID, fn mutateFunc) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// TournamentGetter resolves the owning tournament for branding denormalization
type TournamentGetter interface {
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
}

// UserGetter resolves the tournament owner for streamer branding
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles match business logic
type App struct {
	repo        MatchRepository
	tournaments TournamentGetter
	users       UserGetter
}

// NewApp creates a new match App
func NewApp(repo MatchRepository, tournaments TournamentGetter, users UserGetter) *App {
	return &App{
		repo:        repo,
		tournaments: tournaments,
		users:       users,
	}
}

// CreateMatch schedules a new match. Branding fields are denormalized from
// the owning tournament and its owner so the overlay can render from the
// match document alone.
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	if err := a.validateCreateMatchRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	m := models.Match{
		ID:           req.ID,
		TournamentID: req.TournamentID,
		Player1:      req.Player1,
		Player2:      req.Player2,
		Status:       models.MatchStatusScheduled,
		MatchType:    req.MatchType,
		AgeGroup:     req.AgeGroup,
		Court:        req.Court,
		RoundType:    req.RoundType,
		ScoringType:  req.ScoringType,
	}
	m.Player1.Score = 0
	m.Player2.Score = 0

	if req.TournamentID != nil {
		tournament, err := a.tournaments.GetTournament(ctx, *req.TournamentID)
		if err != nil {
			return nil, fmt.Errorf("tournament not found: %w", err)
		}
		m.TournamentName = tournament.Name
		m.Category = tournament.Category
		m.TournamentLogoURL = tournament.LogoURL
		if m.ScoringType == "" {
			m.ScoringType = tournament.ScoringType
		}
		if owner, err := a.users.GetUser(ctx, tournament.OwnerID); err == nil {
			m.StreamerLogoURL = owner.StreamerLogoURL
		}
	}

	created, err := a.repo.CreateMatch(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", created.ID.String()).
		Str("player1", created.Player1.Name).
		Str("player2", created.Player2.Name).
		Msg("match created")
	return created, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

// ListMatchesByTournament retrieves a tournament's matches
func (a *App) ListMatchesByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Match, error) {
	return a.repo.ListMatchesByTournament(ctx, tournamentID)
}

// PatchMatch merges partial fields into the stored document. Top-level fields
// merge shallowly, player sub-objects field-by-field; the merged document is
// written and broadcast as one committed event. Last write wins at this merge
// granularity when two consoles race.
func (a *App) PatchMatch(ctx context.Context, id uuid.UUID, patch models.MatchPatch) (*models.Match, error) {
	if patch.IsZero() {
		return a.repo.GetMatch(ctx, id)
	}
	return a.repo.Mutate(ctx, id, func(current models.Match, _ time.Time) (models.Match, string, error) {
		return patch.Apply(current), events.TypeMatchUpdated, nil
	})
}

// StartTimer starts the match clock and moves the match to live.
func (a *App) StartTimer(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	updated, err := a.repo.Mutate(ctx, id, func(current models.Match, now time.Time) (models.Match, string, error) {
		if current.IsTimerRunning {
			return current, "", ErrTimerAlreadyRunning
		}
		current.IsTimerRunning = true
		current.TimerStartTime = &now
		current.Status = models.MatchStatusLive
		return current, events.TypeMatchUpdated, nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("match_id", id.String()).Msg("timer started")
	return updated, nil
}

// StopTimer folds the running delta into the stored baseline. The fold
// happens under the row lock, so two concurrent stops cannot double-count
// or lose the active interval.
func (a *App) StopTimer(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	updated, err := a.repo.Mutate(ctx, id, func(current models.Match, now time.Time) (models.Match, string, error) {
		if !current.IsTimerRunning {
			return current, "", ErrTimerNotRunning
		}
		current.TimerElapsed = current.ElapsedSeconds(now)
		current.IsTimerRunning = false
		current.TimerStartTime = nil
		return current, events.TypeMatchUpdated, nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("match_id", id.String()).
		Float64("timer_elapsed", updated.TimerElapsed).
		Msg("timer stopped")
	return updated, nil
}

// DeleteMatch deletes a match by ID
func (a *App) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return err
	}
	log.Info().Str("match_id", id.String()).Msg("match deleted")
	return nil
}

// Validation methods

func (a *App) validateCreateMatchRequest(req CreateMatchRequest) error {
	if req.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if req.Player1.Name == "" {
		return fmt.Errorf("player1.name is required")
	}
	if req.Player2.Name == "" {
		return fmt.Errorf("player2.name is required")
	}
	switch req.MatchType {
	case "", models.MatchTypeSingles, models.MatchTypeDoubles, models.MatchTypeMixed:
	default:
		// Skill-tier labels are allowed through as-is.
	}
	return nil
}
