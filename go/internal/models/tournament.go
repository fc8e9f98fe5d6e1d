package models

import (
	"time"

	"github.com/google/uuid"
)

// TournamentStatus defines the status of a tournament.
type TournamentStatus string

const (
	TournamentStatusUpcoming  TournamentStatus = "upcoming"
	TournamentStatusOngoing   TournamentStatus = "ongoing"
	TournamentStatusCompleted TournamentStatus = "completed"
)

// Tournament owns zero or more matches and zero or more sponsors.
type Tournament struct {
	ID          uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"ownerId"`
	Name        string           `json:"name"`
	Location    string           `json:"location,omitempty"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Category    string           `json:"category,omitempty"`
	ScoringType string           `json:"scoringType,omitempty"`
	Status      TournamentStatus `json:"status"`
	LogoURL     string           `json:"logoUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
