package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/jtan/courtcast/go/internal/models"
)

// CreateMatchRequest represents a request to schedule a new match
type CreateMatchRequest struct {
	ID           uuid.UUID          `json:"id"`
	TournamentID *uuid.UUID         `json:"tournamentId"`
	Player1      models.PlayerState `json:"player1"`
	Player2      models.PlayerState `json:"player2"`
	MatchType    models.MatchType   `json:"matchType"`
	AgeGroup     string             `json:"ageGroup"`
	Court        string             `json:"court"`
	RoundType    string             `json:"roundType"`
	ScoringType  string             `json:"scoringType"`
}

// mutateFunc transforms the locked row inside a transaction and names the
// event to emit alongside the write.
type mutateFunc func(current models.Match, now time.Time) (models.Match, string, error)
