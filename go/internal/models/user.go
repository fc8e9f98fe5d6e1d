package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole defines the permission level of a user. Role is display-only for
// now; the auth package collapses authorization to a permissive policy.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleOrganizer UserRole = "organizer"
	UserRoleViewer    UserRole = "viewer"
)

// User is an organizer account. StreamerLogoURL is broadcast branding,
// separate from the profile photo.
type User struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"displayName"`
	Email           string    `json:"email"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	Role            UserRole  `json:"role"`
	StreamerLogoURL string    `json:"streamerLogoUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
