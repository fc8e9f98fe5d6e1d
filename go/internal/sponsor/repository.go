package sponsor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jtan/courtcast/go/internal/db"
	"github.com/jtan/courtcast/go/internal/models"
	"github.com/jtan/courtcast/go/internal/sqlutil"
)

// ErrNotFound is returned when no sponsor exists for the requested id
var ErrNotFound = errors.New("sponsor not found")

// ErrInvalidRequest is returned when a request fails validation
var ErrInvalidRequest = errors.New("invalid request")

type Repository struct {
	queries *db.Queries
}

func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

func (r *Repository) CreateSponsor(ctx context.Context, req CreateSponsorRequest) (*models.Sponsor, error) {
	row, err := r.queries.CreateSponsor(ctx, db.CreateSponsorParams{
		ID:           req.ID,
		TournamentID: req.TournamentID,
		Name:         req.Name,
		Note:         sqlutil.ToSqlStringEmpty(req.Note),
		Priority:     int32(req.Priority),
		Active:       req.Active,
		AdImageUrl:   sqlutil.ToSqlStringEmpty(req.AdImageURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) GetSponsor(ctx context.Context, id uuid.UUID) (*models.Sponsor, error) {
	row, err := r.queries.GetSponsor(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) ListSponsorsByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error) {
	rows, err := r.queries.ListSponsorsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return rowsToModels(rows), nil
}

// ListActiveSponsors returns the overlay's carousel slides: active sponsors
// in ascending priority order.
func (r *Repository) ListActiveSponsors(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error) {
	rows, err := r.queries.ListActiveSponsorsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sponsors: %w", err)
	}
	return rowsToModels(rows), nil
}

func (r *Repository) UpdateSponsor(ctx context.Context, s models.Sponsor) (*models.Sponsor, error) {
	row, err := r.queries.UpdateSponsor(ctx, db.UpdateSponsorParams{
		ID:         s.ID,
		Name:       s.Name,
		Note:       sqlutil.ToSqlStringEmpty(s.Note),
		Priority:   int32(s.Priority),
		Active:     s.Active,
		AdImageUrl: sqlutil.ToSqlStringEmpty(s.AdImageURL),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update sponsor: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) DeleteSponsor(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteSponsor(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sponsor: %w", err)
	}
	return nil
}

func rowsToModels(rows []db.Sponsor) []*models.Sponsor {
	sponsors := make([]*models.Sponsor, 0, len(rows))
	for _, row := range rows {
		sponsors = append(sponsors, rowToModel(row))
	}
	return sponsors
}

func rowToModel(row db.Sponsor) *models.Sponsor {
	return &models.Sponsor{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		Name:         row.Name,
		Note:         sqlutil.FromSqlString(row.Note, ""),
		Priority:     int(row.Priority),
		Active:       row.Active,
		AdImageURL:   sqlutil.FromSqlString(row.AdImageUrl, ""),
		CreatedAt:    row.CreatedAt,
	}
}
