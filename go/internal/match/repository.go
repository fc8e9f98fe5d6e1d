package match

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/jtan/courtcast/go/internal/db"
	"github.com/jtan/courtcast/go/internal/match/events"
	"github.com/jtan/courtcast/go/internal/models"
	"github.com/jtan/courtcast/go/internal/sqlutil"
)

// Repository persists matches and writes their outbox events in the same
// transaction, so subscribers observe committed writes in commit order.
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

func NewRepository(dbConn *sql.DB) *Repository {
	return &Repository{
		db:      dbConn,
		queries: db.New(dbConn),
	}
}

// playersDoc is the shape of the players jsonb column.
type playersDoc struct {
	Player1 models.PlayerState `json:"player1"`
	Player2 models.PlayerState `json:"player2"`
}

// displayDoc is the shape of the display jsonb column: branding denormalized
// from the owning tournament and user, plus match metadata.
type displayDoc struct {
	TournamentName          string           `json:"tournamentName,omitempty"`
	Category                string           `json:"category,omitempty"`
	TournamentLogoURL       string           `json:"tournamentLogoUrl,omitempty"`
	StreamerLogoURL         string           `json:"streamerLogoUrl,omitempty"`
	OverlayScale            float64          `json:"overlayScale,omitempty"`
	ShowTournamentLogo      *bool            `json:"showTournamentLogo,omitempty"`
	ShowStreamerLogo        *bool            `json:"showStreamerLogo,omitempty"`
	ShowMatchInfo           *bool            `json:"showMatchInfo,omitempty"`
	IsSponsorsOverlayActive bool             `json:"isSponsorsOverlayActive,omitempty"`
	MatchType               models.MatchType `json:"matchType,omitempty"`
	AgeGroup                string           `json:"ageGroup,omitempty"`
	Court                   string           `json:"court,omitempty"`
	RoundType               string           `json:"roundType,omitempty"`
	ScoringType             string           `json:"scoringType,omitempty"`
}

// CreateMatch inserts a match and its MatchCreated event atomically.
func (r *Repository) CreateMatch(ctx context.Context, m models.Match) (*models.Match, error) {
	params, err := modelToCreateParams(m)
	if err != nil {
		return nil, err
	}

	var created *models.Match
	err = sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			row, err := q.CreateMatch(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create match: %w", err)
			}
			created, err = rowToModel(row)
			if err != nil {
				return err
			}
			return insertEvent(ctx, q, created.ID, events.TypeMatchCreated, events.MatchCreatedPayload{Match: *created})
		})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetMatch retrieves a match by id. Match ids are globally unique, so no
// tournament scope is needed.
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	row, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return rowToModel(row)
}

// ListMatchesByTournament returns a tournament's matches, newest first.
func (r *Repository) ListMatchesByTournament(ctx context.Context, tournamentID uuid.UUID) ([]*models.Match, error) {
	rows, err := r.queries.ListMatchesByTournament(ctx, uuid.NullUUID{UUID: tournamentID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	matches := make([]*models.Match, 0, len(rows))
	for _, row := range rows {
		m, err := rowToModel(row)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// Mutate locks the row, applies fn to the current document, writes the
// result and its outbox event, and commits. This is the single write path
// for every live update, which is what makes timer stop folds and patch
// merges atomic under concurrent writers.
func (r *Repository) Mutate(ctx context.Context, id uuid.UUID, fn mutateFunc) (*models.Match, error) {
	var updated *models.Match
	err := sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			row, err := q.GetMatchForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return fmt.Errorf("failed to lock match: %w", err)
			}
			current, err := rowToModel(row)
			if err != nil {
				return err
			}

			next, eventType, err := fn(*current, time.Now())
			if err != nil {
				return err
			}

			params, err := modelToUpdateParams(next)
			if err != nil {
				return err
			}
			saved, err := q.UpdateMatch(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to update match: %w", err)
			}
			updated, err = rowToModel(saved)
			if err != nil {
				return err
			}
			return insertEvent(ctx, q, updated.ID, eventType, events.MatchUpdatedPayload{Match: *updated})
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMatch removes a match and emits MatchDeleted atomically.
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			if _, err := q.GetMatch(ctx, id); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return fmt.Errorf("failed to get match: %w", err)
			}
			if err := q.DeleteMatch(ctx, id); err != nil {
				return fmt.Errorf("failed to delete match: %w", err)
			}
			return insertEvent(ctx, q, id, events.TypeMatchDeleted, events.MatchDeletedPayload{
				MatchID:   id.String(),
				DeletedAt: time.Now(),
			})
		})
}

func insertEvent(ctx context.Context, q *db.Queries, matchID uuid.UUID, eventType string, payload interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	if _, err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:        uuid.New(),
		MatchID:   matchID,
		EventType: eventType,
		Payload:   payloadBytes,
	}); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// Row mapping helpers

func rowToModel(row db.Match) (*models.Match, error) {
	var players playersDoc
	if err := json.Unmarshal(row.Players, &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	var display displayDoc
	if row.Display.Valid {
		if err := json.Unmarshal(row.Display.RawMessage, &display); err != nil {
			return nil, fmt.Errorf("failed to unmarshal display: %w", err)
		}
	}

	return &models.Match{
		ID:             row.ID,
		TournamentID:   sqlutil.FromNullUUID(row.TournamentID),
		Player1:        players.Player1,
		Player2:        players.Player2,
		Status:         models.MatchStatus(row.Status),
		IsTimerRunning: row.IsTimerRunning,
		TimerStartTime: sqlutil.FromSqlTime(row.TimerStartTime),
		TimerElapsed:   row.TimerElapsed,

		TournamentName:          display.TournamentName,
		Category:                display.Category,
		TournamentLogoURL:       display.TournamentLogoURL,
		StreamerLogoURL:         display.StreamerLogoURL,
		OverlayScale:            display.OverlayScale,
		ShowTournamentLogo:      display.ShowTournamentLogo,
		ShowStreamerLogo:        display.ShowStreamerLogo,
		ShowMatchInfo:           display.ShowMatchInfo,
		IsSponsorsOverlayActive: display.IsSponsorsOverlayActive,
		MatchType:               display.MatchType,
		AgeGroup:                display.AgeGroup,
		Court:                   display.Court,
		RoundType:               display.RoundType,
		ScoringType:             display.ScoringType,

		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func marshalDocs(m models.Match) (json.RawMessage, pqtype.NullRawMessage, error) {
	playersBytes, err := json.Marshal(playersDoc{Player1: m.Player1, Player2: m.Player2})
	if err != nil {
		return nil, pqtype.NullRawMessage{}, fmt.Errorf("failed to marshal players: %w", err)
	}

	display := displayDoc{
		TournamentName:          m.TournamentName,
		Category:                m.Category,
		TournamentLogoURL:       m.TournamentLogoURL,
		StreamerLogoURL:         m.StreamerLogoURL,
		OverlayScale:            m.OverlayScale,
		ShowTournamentLogo:      m.ShowTournamentLogo,
		ShowStreamerLogo:        m.ShowStreamerLogo,
		ShowMatchInfo:           m.ShowMatchInfo,
		IsSponsorsOverlayActive: m.IsSponsorsOverlayActive,
		MatchType:               m.MatchType,
		AgeGroup:                m.AgeGroup,
		Court:                   m.Court,
		RoundType:               m.RoundType,
		ScoringType:             m.ScoringType,
	}
	displayBytes, err := json.Marshal(display)
	if err != nil {
		return nil, pqtype.NullRawMessage{}, fmt.Errorf("failed to marshal display: %w", err)
	}

	return playersBytes, pqtype.NullRawMessage{RawMessage: displayBytes, Valid: true}, nil
}

func modelToCreateParams(m models.Match) (db.CreateMatchParams, error) {
	players, display, err := marshalDocs(m)
	if err != nil {
		return db.CreateMatchParams{}, err
	}
	return db.CreateMatchParams{
		ID:             m.ID,
		TournamentID:   sqlutil.ToNullUUID(m.TournamentID),
		Status:         string(m.Status),
		Players:        players,
		IsTimerRunning: m.IsTimerRunning,
		TimerStartTime: sqlutil.ToSqlTime(m.TimerStartTime),
		TimerElapsed:   m.TimerElapsed,
		Display:        display,
	}, nil
}

func modelToUpdateParams(m models.Match) (db.UpdateMatchParams, error) {
	players, display, err := marshalDocs(m)
	if err != nil {
		return db.UpdateMatchParams{}, err
	}
	return db.UpdateMatchParams{
		ID:             m.ID,
		Status:         string(m.Status),
		Players:        players,
		IsTimerRunning: m.IsTimerRunning,
		TimerStartTime: sqlutil.ToSqlTime(m.TimerStartTime),
		TimerElapsed:   m.TimerElapsed,
		Display:        display,
	}, nil
}
