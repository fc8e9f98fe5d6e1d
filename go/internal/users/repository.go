package users

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

// ErrNotFound is returned when no user exists for the requested id
var ErrNotFound = errors.New("user not found")

// ErrInvalidRequest is returned when a request fails validation
var ErrInvalidRequest = errors.New("invalid request")

// ErrEmailExists is returned when creating a user with a taken email
var ErrEmailExists = errors.New("email already in use")

// Repository implements user data access operations
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new users repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	row, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:              uuid.New(),
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		PhotoUrl:        sqlutil.ToSqlStringEmpty(req.PhotoURL),
		Role:            string(req.Role),
		StreamerLogoUrl: sqlutil.ToSqlStringEmpty(req.StreamerLogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) UpdateUser(ctx context.Context, u models.User) (*models.User, error) {
	row, err := r.queries.UpdateUser(ctx, db.UpdateUserParams{
		ID:              u.ID,
		DisplayName:     u.DisplayName,
		PhotoUrl:        sqlutil.ToSqlStringEmpty(u.PhotoURL),
		Role:            string(u.Role),
		StreamerLogoUrl: sqlutil.ToSqlStringEmpty(u.StreamerLogoURL),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return rowToModel(row), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func rowToModel(row db.User) *models.User {
	return &models.User{
		ID:              row.ID,
		DisplayName:     row.DisplayName,
		Email:           row.Email,
		PhotoURL:        sqlutil.FromSqlString(row.PhotoUrl, ""),
		Role:            models.UserRole(row.Role),
		StreamerLogoURL: sqlutil.FromSqlString(row.StreamerLogoUrl, ""),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
