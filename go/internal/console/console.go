// Package console implements the operator-side mutation queue. Every edit
// applies to a local replica immediately so the UI never waits on the
// network; writes are coalesced behind a debounce window, with a bypass lane
// for state transitions that must land right away.
package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/models"
)

// Console owns one match document on behalf of an operator. All methods are
// safe for concurrent use.
type Console struct {
	store   Store
	clock   clockwork.Clock
	cfg     Config
	matchID uuid.UUID

	mu         sync.Mutex
	local      models.Match // optimistic replica the UI renders
	lastServer models.Match // last snapshot acknowledged by the store
	pending    models.MatchPatch
	inflight   bool
	urgent     bool // a transition is buffered; skip the debounce window
	loaded     bool
	timer      clockwork.Timer
}

// New creates a console for one match. Call Load before mutating.
func New(store Store, clock clockwork.Clock, matchID uuid.UUID, cfg Config) *Console {
	return &Console{
		store:   store,
		clock:   clock,
		cfg:     cfg.withDefaults(),
		matchID: matchID,
	}
}

// Load fetches the authoritative snapshot and primes both replicas.
func (c *Console) Load(ctx context.Context) error {
	m, err := c.store.GetMatch(ctx, c.matchID)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", c.matchID, err)
	}

	c.mu.Lock()
	c.local = *m
	c.lastServer = *m
	c.loaded = true
	c.mu.Unlock()

	c.notifyChange(*m)
	return nil
}

// Close cancels any pending debounce timer. An in-flight write finishes on
// its own.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Snapshot returns the current local replica.
func (c *Console) Snapshot() models.Match {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.local
}

// Pending reports whether edits are buffered or in flight.
func (c *Console) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight || !c.pending.IsZero()
}

// Stage applies a patch optimistically and (re)starts the debounce window.
func (c *Console) Stage(ctx context.Context, patch models.MatchPatch) error {
	if patch.IsZero() {
		return nil
	}

	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return fmt.Errorf("console not loaded")
	}
	c.pending = c.pending.Merge(patch)
	c.local = patch.Apply(c.local)
	local := c.local
	c.scheduleFlushLocked(ctx)
	c.mu.Unlock()

	c.notifyChange(local)
	return nil
}

// Commit applies a patch optimistically and flushes without waiting for the
// debounce window. Used for the transition class of operations.
func (c *Console) Commit(ctx context.Context, patch models.MatchPatch) error {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return fmt.Errorf("console not loaded")
	}
	c.pending = c.pending.Merge(patch)
	c.local = patch.Apply(c.local)
	c.urgent = true
	local := c.local
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.notifyChange(local)
	return c.flush(ctx)
}

// scheduleFlushLocked restarts the debounce timer. Caller holds c.mu.
func (c *Console) scheduleFlushLocked(ctx context.Context) {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clock.AfterFunc(c.cfg.DebounceWindow, func() {
		if err := c.flush(ctx); err != nil {
			log.Error().
				Err(err).
				Str("match_id", c.matchID.String()).
				Msg("debounced write failed")
		}
	})
}

// flush sends the buffered patch. Only one write is ever in flight; edits
// landing during the flight stay buffered and are rescheduled when it ends.
// A transition committed during the flight is written as soon as the flight
// returns instead of waiting out another debounce window.
func (c *Console) flush(ctx context.Context) error {
	for {
		c.mu.Lock()
		if c.inflight || c.pending.IsZero() {
			c.mu.Unlock()
			return nil
		}
		patch := c.pending
		c.pending = models.MatchPatch{}
		c.urgent = false
		c.inflight = true
		c.mu.Unlock()

		updated, err := c.writeWithRetry(ctx, patch)

		c.mu.Lock()
		c.inflight = false
		if err != nil {
			// Roll every field back to the last acknowledged snapshot, edits
			// buffered during the flight included.
			c.pending = models.MatchPatch{}
			c.urgent = false
			c.local = c.lastServer
			local := c.local
			c.mu.Unlock()

			c.notifyError(err)
			c.notifyChange(local)
			return err
		}

		c.lastServer = *updated
		c.local = c.pending.Apply(c.lastServer)
		local := c.local
		rebuffered := !c.pending.IsZero()
		urgent := c.urgent
		if rebuffered && !urgent {
			c.scheduleFlushLocked(ctx)
		}
		c.mu.Unlock()

		c.notifyChange(local)
		if !rebuffered || !urgent {
			return nil
		}
	}
}

func (c *Console) writeWithRetry(ctx context.Context, patch models.MatchPatch) (*models.Match, error) {
	backoff := c.cfg.RetryBackoff
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if backoff > 0 {
				c.clock.Sleep(backoff)
				backoff *= 2
			}
			log.Warn().
				Err(lastErr).
				Str("match_id", c.matchID.String()).
				Int("attempt", attempt+1).
				Msg("retrying match write")
		}

		updated, err := c.store.PatchMatch(ctx, c.matchID, patch)
		if err == nil {
			return updated, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("match write failed after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}

func (c *Console) notifyChange(m models.Match) {
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(m)
	}
}

func (c *Console) notifyError(err error) {
	if c.cfg.OnError != nil {
		c.cfg.OnError(err)
	}
}
