package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/match"
	"github.com/jtan/courtcast/go/internal/models"
)

// ErrMatchNotFound signals a subscription to a match id with no document
// behind it. The websocket handler turns it into the render-nothing state,
// never into an error frame.
var ErrMatchNotFound = errors.New("match not found")

// MatchGetter is the database fallback for match snapshots.
type MatchGetter interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
}

// SponsorLister is the database fallback for the sponsor ticker.
type SponsorLister interface {
	ListActiveSponsors(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error)
}

// SnapshotProvider serves the latest match snapshot and active sponsor list,
// redis first so a reconnecting overlay never waits on the database.
type SnapshotProvider struct {
	rdb      *redis.Client
	matches  MatchGetter
	sponsors SponsorLister
	ttl      time.Duration
}

// NewSnapshotProvider creates a provider. rdb may be nil, in which case every
// read falls through to the database.
func NewSnapshotProvider(rdb *redis.Client, matches MatchGetter, sponsors SponsorLister, ttl time.Duration) *SnapshotProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotProvider{
		rdb:      rdb,
		matches:  matches,
		sponsors: sponsors,
		ttl:      ttl,
	}
}

func matchSnapshotKey(id uuid.UUID) string {
	return "overlay:match:" + id.String()
}

func sponsorsKey(tournamentID uuid.UUID) string {
	return "overlay:sponsors:" + tournamentID.String()
}

// GetMatch returns the latest known snapshot for the match, preferring the
// cache. Returns ErrMatchNotFound when no document exists.
func (p *SnapshotProvider) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	if p.rdb != nil {
		data, err := p.rdb.Get(ctx, matchSnapshotKey(id)).Bytes()
		if err == nil {
			var m models.Match
			if err := json.Unmarshal(data, &m); err == nil {
				return &m, nil
			}
			log.Warn().Str("match_id", id.String()).Msg("corrupt cached snapshot, falling back to database")
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("redis read failed, falling back to database")
		}
	}

	m, err := p.matches.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match snapshot: %w", err)
	}

	p.StoreMatch(ctx, *m)
	return m, nil
}

// StoreMatch caches the snapshot. Called by the event consumer on every
// committed write so the cache tracks the stream.
func (p *SnapshotProvider) StoreMatch(ctx context.Context, m models.Match) {
	if p.rdb == nil {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal snapshot for cache")
		return
	}
	if err := p.rdb.Set(ctx, matchSnapshotKey(m.ID), data, p.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("match_id", m.ID.String()).Msg("failed to cache snapshot")
	}
}

// DropMatch removes a deleted match from the cache.
func (p *SnapshotProvider) DropMatch(ctx context.Context, id uuid.UUID) {
	if p.rdb == nil {
		return
	}
	if err := p.rdb.Del(ctx, matchSnapshotKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("match_id", id.String()).Msg("failed to drop cached snapshot")
	}
}

// GetActiveSponsors returns the tournament's active sponsors sorted by
// priority, cached with the same TTL as snapshots.
func (p *SnapshotProvider) GetActiveSponsors(ctx context.Context, tournamentID uuid.UUID) ([]*models.Sponsor, error) {
	if p.rdb != nil {
		data, err := p.rdb.Get(ctx, sponsorsKey(tournamentID)).Bytes()
		if err == nil {
			var sponsors []*models.Sponsor
			if err := json.Unmarshal(data, &sponsors); err == nil {
				return sponsors, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("redis read failed, falling back to database")
		}
	}

	sponsors, err := p.sponsors.ListActiveSponsors(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsors: %w", err)
	}

	if p.rdb != nil {
		if data, err := json.Marshal(sponsors); err == nil {
			if err := p.rdb.Set(ctx, sponsorsKey(tournamentID), data, p.ttl).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache sponsors")
			}
		}
	}
	return sponsors, nil
}
