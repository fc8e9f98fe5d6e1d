package tournament

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

// ErrNotFound is returned when no tournament exists for the requested id
var ErrNotFound = errors.New("tournament not found")

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

func (r *Repository) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	row, err := r.queries.CreateTournament(ctx, db.CreateTournamentParams{
		ID:          req.ID,
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Location:    sqlutil.ToSqlStringEmpty(req.Location),
		StartDate:   sqlutil.ToSqlTime(req.StartDate),
		EndDate:     sqlutil.ToSqlTime(req.EndDate),
		Category:    sqlutil.ToSqlStringEmpty(req.Category),
		ScoringType: sqlutil.ToSqlStringEmpty(req.ScoringType),
		Status:      string(req.Status),
		LogoUrl:     sqlutil.ToSqlStringEmpty(req.LogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	row, err := r.queries.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) ListTournamentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Tournament, error) {
	rows, err := r.queries.ListTournamentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	tournaments := make([]*models.Tournament, 0, len(rows))
	for _, row := range rows {
		tournaments = append(tournaments, rowToModel(row))
	}
	return tournaments, nil
}

func (r *Repository) UpdateTournament(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	row, err := r.queries.UpdateTournament(ctx, db.UpdateTournamentParams{
		ID:          t.ID,
		Name:        t.Name,
		Location:    sqlutil.ToSqlStringEmpty(t.Location),
		StartDate:   sqlutil.ToSqlTime(t.StartDate),
		EndDate:     sqlutil.ToSqlTime(t.EndDate),
		Category:    sqlutil.ToSqlStringEmpty(t.Category),
		ScoringType: sqlutil.ToSqlStringEmpty(t.ScoringType),
		Status:      string(t.Status),
		LogoUrl:     sqlutil.ToSqlStringEmpty(t.LogoURL),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteTournament(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return nil
}

func rowToModel(row db.Tournament) *models.Tournament {
	return &models.Tournament{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Location:    sqlutil.FromSqlString(row.Location, ""),
		StartDate:   sqlutil.FromSqlTime(row.StartDate),
		EndDate:     sqlutil.FromSqlTime(row.EndDate),
		Category:    sqlutil.FromSqlString(row.Category, ""),
		ScoringType: sqlutil.FromSqlString(row.ScoringType, ""),
		Status:      models.TournamentStatus(row.Status),
		LogoURL:     sqlutil.FromSqlString(row.LogoUrl, ""),
		CreatedAt:   row.CreatedAt,
	}
}
