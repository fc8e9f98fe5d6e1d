package console

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jtan/courtcast/go/internal/models"
)

// Store defines what the console needs from the backend. In production this
// is the REST client; tests substitute a fake.
type Store interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	PatchMatch(ctx context.Context, id uuid.UUID, patch models.MatchPatch) (*models.Match, error)
}

// Config tunes queue behavior. Zero values fall back to production defaults.
type Config struct {
	// DebounceWindow is how long the queue waits after the last buffered
	// mutation before writing. Each new mutation restarts the window.
	DebounceWindow time.Duration

	// MaxRetries is how many additional attempts a failed write gets before
	// the queue rolls back and surfaces the error.
	MaxRetries int

	// RetryBackoff is the initial delay between attempts; it doubles per
	// retry. Negative disables the delay entirely.
	RetryBackoff time.Duration

	// OnChange fires with the new local replica after every apply, reconcile
	// or rollback. Called outside the queue lock.
	OnChange func(models.Match)

	// OnError fires when a write exhausts its retries and local state has
	// been rolled back to the last known-good server snapshot.
	OnError func(error)
}

const (
	defaultDebounceWindow = 500 * time.Millisecond
	defaultMaxRetries     = 3
	defaultRetryBackoff   = 250 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.DebounceWindow <= 0 {
		c.DebounceWindow = defaultDebounceWindow
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	switch {
	case c.RetryBackoff == 0:
		c.RetryBackoff = defaultRetryBackoff
	case c.RetryBackoff < 0:
		c.RetryBackoff = 0
	}
	return c
}
