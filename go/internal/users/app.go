package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, u models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// App handles users business logic
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateUser creates a new user with validation
func (a *App) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := a.validateCreateUserRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	if req.Role == "" {
		req.Role = models.UserRoleAdmin
	}

	existing, err := a.repo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailExists, req.Email)
	}

	user, err := a.repo.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user created")
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}

// GetUserByEmail retrieves a user by email
func (a *App) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return a.repo.GetUserByEmail(ctx, email)
}

// UpdateUser applies the provided profile fields to an existing user
func (a *App) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	current, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if *req.DisplayName == "" {
			return nil, fmt.Errorf("%w: display_name cannot be empty", ErrInvalidRequest)
		}
		current.DisplayName = *req.DisplayName
	}
	if req.PhotoURL != nil {
		current.PhotoURL = *req.PhotoURL
	}
	if req.Role != nil {
		current.Role = *req.Role
	}
	if req.StreamerLogoURL != nil {
		current.StreamerLogoURL = *req.StreamerLogoURL
	}

	return a.repo.UpdateUser(ctx, *current)
}

// DeleteUser deletes a user by ID
func (a *App) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	log.Info().
		Str("user_id", id.String()).
		Str("email", user.Email).
		Msg("user deleted")
	return nil
}

func (a *App) validateCreateUserRequest(req CreateUserRequest) error {
	if req.DisplayName == "" {
		return fmt.Errorf("display_name is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}
