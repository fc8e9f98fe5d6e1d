package tournament

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/models"
)

// TournamentRepository defines what the app layer needs from the repository
type TournamentRepository interface {
	CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	ListTournamentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Tournament, error)
	UpdateTournament(ctx context.Context, t models.Tournament) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id uuid.UUID) error
}

// App handles tournament business logic
type App struct {
	repo TournamentRepository
}

// NewApp creates a new tournament App
func NewApp(repo TournamentRepository) *App {
	return &App{
		repo: repo,
	}
}

func (a *App) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	if req.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidRequest)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if req.Status == "" {
		req.Status = models.TournamentStatusUpcoming
	}

	tournament, err := a.repo.CreateTournament(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("tournament_id", tournament.ID.String()).
		Str("name", tournament.Name).
		Msg("tournament created")
	return tournament, nil
}

func (a *App) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	return a.repo.GetTournament(ctx, id)
}

func (a *App) ListTournamentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Tournament, error) {
	return a.repo.ListTournamentsByOwner(ctx, ownerID)
}

// UpdateTournament applies the provided fields to the stored tournament.
func (a *App) UpdateTournament(ctx context.Context, id uuid.UUID, req UpdateTournamentRequest) (*models.Tournament, error) {
	current, err := a.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Location != nil {
		current.Location = *req.Location
	}
	if req.StartDate != nil {
		current.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		current.EndDate = req.EndDate
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.ScoringType != nil {
		current.ScoringType = *req.ScoringType
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.LogoURL != nil {
		current.LogoURL = *req.LogoURL
	}

	return a.repo.UpdateTournament(ctx, *current)
}

func (a *App) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	if _, err := a.repo.GetTournament(ctx, id); err != nil {
		return err
	}
	if err := a.repo.DeleteTournament(ctx, id); err != nil {
		return err
	}
	log.Info().Str("tournament_id", id.String()).Msg("tournament deleted")
	return nil
}
