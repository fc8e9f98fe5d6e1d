package sponsor

import "github.com/google/uuid"

// CreateSponsorRequest represents a request to add a sponsor to a tournament
type CreateSponsorRequest struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournamentId"`
	Name         string    `json:"name"`
	Note         string    `json:"note"`
	Priority     int       `json:"priority"`
	Active       bool      `json:"active"`
	AdImageURL   string    `json:"adImageUrl"`
}

// UpdateSponsorRequest represents the fields that can be edited
type UpdateSponsorRequest struct {
	Name       *string `json:"name,omitempty"`
	Note       *string `json:"note,omitempty"`
	Priority   *int    `json:"priority,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	AdImageURL *string `json:"adImageUrl,omitempty"`
}
