package models

import (
	"time"

	"github.com/google/uuid"
)

// Sponsor is a tournament sponsor slide. The overlay consumes sponsors
// read-only, filtered to Active and sorted by ascending Priority.
type Sponsor struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournamentId"`
	Name         string    `json:"name"`
	Note         string    `json:"note,omitempty"`
	Priority     int       `json:"priority"`
	Active       bool      `json:"active"`
	AdImageURL   string    `json:"adImageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
