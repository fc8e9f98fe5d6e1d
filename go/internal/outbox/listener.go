package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/jtan/courtcast/go/internal/db"
)

// ListenerConfig tunes the relay loop.
type ListenerConfig struct {
	DatabaseURL      string        // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        // channel pg_notify fires on insert
	FallbackInterval time.Duration // how often to sweep for missed events
	MaxRetries       int
	RetryDelay       time.Duration
	PingInterval     time.Duration
	BatchSize        int32
}

// DefaultListenerConfig returns the production relay settings.
func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		DatabaseURL:      "",
		NotifyChannel:    "match_outbox_events",
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// Publisher pushes one outbox event downstream.
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}

// outboxQueries is the slice of the query layer the relay needs.
type outboxQueries interface {
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (db.MatchOutbox, error)
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]db.MatchOutbox, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}

// Listener drives the relay: LISTEN/NOTIFY for the hot path, a fallback
// sweep for anything the notification path misses.
type Listener struct {
	db        *sql.DB
	queries   outboxQueries
	listener  *pq.Listener
	publisher Publisher
	cfg       ListenerConfig
}

// NewListener opens the LISTEN connection and binds the publisher.
func NewListener(dbConn *sql.DB, publisher Publisher, cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", cfg.NotifyChannel).
		Msg("listening for notifications")

	return &Listener{
		db:        dbConn,
		queries:   db.New(dbConn),
		listener:  l,
		publisher: publisher,
		cfg:       cfg,
	}, nil
}

// Start runs the relay loop until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	pingTicker := time.NewTicker(l.cfg.PingInterval)
	fallbackTicker := time.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.Stop()
		case note := <-l.listener.Notify:
			if note == nil {
				// nil means the connection dropped and pq is reconnecting;
				// the fallback sweep covers anything missed meanwhile
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
				// Replay from the oldest unsent row before touching the next
				// notification, so a failed event cannot be overtaken.
				if err := l.processUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
			}
		case <-fallbackTicker.C:
			if err := l.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.C:
			if err := l.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// Stop closes the LISTEN connection.
func (l *Listener) Stop() error {
	return l.listener.Close()
}

// handleNotification publishes the single event named in the notification
// payload and marks it sent.
func (l *Listener) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	row, err := l.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}
	if row.SentAt.Valid {
		return nil
	}

	event := rowToEvent(row)
	if err := l.publishWithRetry(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Info().Str("event_id", id.String()).Msg("published and marked event as sent")
	return nil
}

// processUnsent sweeps the outbox for rows the notification path missed, in
// insertion order. The sweep aborts on the first failure rather than skip
// ahead; publishing a later row before an earlier one would break commit
// order, and the next sweep restarts from the oldest unsent row anyway.
func (l *Listener) processUnsent(ctx context.Context) error {
	unsent, err := l.queries.FetchUnsentOutbox(ctx, l.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	for _, row := range unsent {
		event := rowToEvent(row)
		if err := l.publishWithRetry(ctx, event); err != nil {
			return fmt.Errorf("publish stalled at event %s: %w", event.ID, err)
		}
	}
	return nil
}

// publishWithRetry publishes with a linearly growing delay, then marks the
// row sent. Marking sent only after a successful publish keeps delivery
// at-least-once; the JetStream dedup id absorbs the duplicates.
func (l *Listener) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := l.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := l.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if err := l.queries.MarkOutboxSent(ctx, event.ID); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to mark outbox event as sent")
			return err
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", l.cfg.MaxRetries+1, lastErr)
}

func rowToEvent(row db.MatchOutbox) OutboxEvent {
	event := OutboxEvent{
		ID:        row.ID,
		MatchID:   row.MatchID,
		EventType: row.EventType,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}
	if row.SentAt.Valid {
		t := row.SentAt.Time
		event.SentAt = &t
	}
	return event
}
