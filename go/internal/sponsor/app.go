package sponsor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/models"
)

// SponsorRepository defines what the app layer needs from the repository
type SponsorRepository interface {
	CreateSponsor(ctx context.Context, req CreateSponsorRequest) (*models.Sponsor, error)
	GetSponsor(ctx context.Context, id uuid.UUID) (*models.Sponsor, error)
	ListSponsorsByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error)
	ListActiveSponsors(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error)
	UpdateSponsor(ctx context.Context, s models.Sponsor) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id uuid.UUID) error
}

// App handles sponsor business logic
type App struct {
	repo SponsorRepository
}

// NewApp creates a new sponsor App
func NewApp(repo SponsorRepository) *App {
	return &App{
		repo: repo,
	}
}

func (a *App) CreateSponsor(ctx context.Context, req CreateSponsorRequest) (*models.Sponsor, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	if req.TournamentID == uuid.Nil {
		return nil, fmt.Errorf("%w: tournament_id is required", ErrInvalidRequest)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if req.Priority < 0 {
		return nil, fmt.Errorf("%w: priority cannot be negative", ErrInvalidRequest)
	}

	sponsor, err := a.repo.CreateSponsor(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("sponsor_id", sponsor.ID.String()).
		Str("tournament_id", sponsor.TournamentID.String()).
		Msg("sponsor created")
	return sponsor, nil
}

func (a *App) GetSponsor(ctx context.Context, id uuid.UUID) (*models.Sponsor, error) {
	return a.repo.GetSponsor(ctx, id)
}

func (a *App) ListSponsorsByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error) {
	return a.repo.ListSponsorsByTournament(ctx, tournamentID)
}

// ListActiveSponsors is the overlay's read path: active only, priority
// ascending.
func (a *App) ListActiveSponsors(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error) {
	return a.repo.ListActiveSponsors(ctx, tournamentID)
}

func (a *App) UpdateSponsor(ctx context.Context, id uuid.UUID, req UpdateSponsorRequest) (*models.Sponsor, error) {
	current, err := a.repo.GetSponsor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Note != nil {
		current.Note = *req.Note
	}
	if req.Priority != nil {
		if *req.Priority < 0 {
			return nil, fmt.Errorf("%w: priority cannot be negative", ErrInvalidRequest)
		}
		current.Priority = *req.Priority
	}
	if req.Active != nil {
		current.Active = *req.Active
	}
	if req.AdImageURL != nil {
		current.AdImageURL = *req.AdImageURL
	}

	return a.repo.UpdateSponsor(ctx, *current)
}

func (a *App) DeleteSponsor(ctx context.Context, id uuid.UUID) error {
	if _, err := a.repo.GetSponsor(ctx, id); err != nil {
		return err
	}
	if err := a.repo.DeleteSponsor(ctx, id); err != nil {
		return err
	}
	log.Info().Str("sponsor_id", id.String()).Msg("sponsor deleted")
	return nil
}
