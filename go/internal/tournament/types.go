package tournament

import (
	"time"

	"github.com/google/uuid"
	"github.com/jtan/courtcast/go/internal/models"
)

// CreateTournamentRequest represents a request to create a new tournament
type CreateTournamentRequest struct {
	ID          uuid.UUID               `json:"id"`
	OwnerID     uuid.UUID               `json:"ownerId"`
	Name        string                  `json:"name"`
	Location    string                  `json:"location"`
	StartDate   *time.Time              `json:"startDate"`
	EndDate     *time.Time              `json:"endDate"`
	Category    string                  `json:"category"`
	ScoringType string                  `json:"scoringType"`
	Status      models.TournamentStatus `json:"status"`
	LogoURL     string                  `json:"logoUrl"`
}

// UpdateTournamentRequest represents the fields that can be edited
type UpdateTournamentRequest struct {
	Name        *string                  `json:"name,omitempty"`
	Location    *string                  `json:"location,omitempty"`
	StartDate   *time.Time               `json:"startDate,omitempty"`
	EndDate     *time.Time               `json:"endDate,omitempty"`
	Category    *string                  `json:"category,omitempty"`
	ScoringType *string                  `json:"scoringType,omitempty"`
	Status      *models.TournamentStatus `json:"status,omitempty"`
	LogoURL     *string                  `json:"logoUrl,omitempty"`
}
