package users

import "github.com/jtan/courtcast/go/internal/models"

// CreateUserRequest represents the data needed to create a new user
type CreateUserRequest struct {
	DisplayName     string          `json:"displayName"`
	Email           string          `json:"email"`
	PhotoURL        string          `json:"photoUrl"`
	Role            models.UserRole `json:"role"`
	StreamerLogoURL string          `json:"streamerLogoUrl"`
}

// UpdateUserRequest represents the data that can be updated for a user
type UpdateUserRequest struct {
	DisplayName     *string          `json:"displayName,omitempty"`
	PhotoURL        *string          `json:"photoUrl,omitempty"`
	Role            *models.UserRole `json:"role,omitempty"`
	StreamerLogoURL *string          `json:"streamerLogoUrl,omitempty"`
}
