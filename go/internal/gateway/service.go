package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Service is the overlay gateway: websocket fanout, JetStream consumption
// and per-match sponsor carousels.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	overlayHandler    *OverlayHandler
	eventConsumer     *EventConsumer
	snapshots         *SnapshotProvider
	clock             clockwork.Clock

	carouselInterval time.Duration

	mu        sync.Mutex
	carousels map[uuid.UUID]*Carousel
	runCtx    context.Context
}

// Config holds gateway service configuration.
type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
	CarouselInterval time.Duration
}

// DefaultConfig returns production gateway settings.
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
		CarouselInterval: DefaultCarouselInterval,
	}
}

// NewService wires the gateway together.
func NewService(config Config, snapshots *SnapshotProvider, clock clockwork.Clock) (*Service, error) {
	connectionManager := NewConnectionManager(config.ConnectionConfig)
	wsHandler := NewWebSocketHandler(connectionManager, snapshots)
	overlayHandler := NewOverlayHandler(snapshots)

	eventConsumer, err := NewEventConsumer(connectionManager, snapshots, config.JetStreamConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}

	interval := config.CarouselInterval
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}

	s := &Service{
		connectionManager: connectionManager,
		wsHandler:         wsHandler,
		overlayHandler:    overlayHandler,
		eventConsumer:     eventConsumer,
		snapshots:         snapshots,
		clock:             clock,
		carouselInterval:  interval,
		carousels:         make(map[uuid.UUID]*Carousel),
	}

	connectionManager.OnFirstSubscriber = s.startCarousel
	connectionManager.OnLastUnsubscribe = s.stopCarousel

	return s, nil
}

// Start runs the gateway until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting overlay gateway service")

	s.mu.Lock()
	s.runCtx = ctx
	s.mu.Unlock()

	go s.connectionManager.Start(ctx)

	go func() {
		if err := s.eventConsumer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("event consumer failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("overlay gateway service shutting down")
	return s.Stop()
}

// Stop tears down the consumer and all carousels.
func (s *Service) Stop() error {
	if err := s.eventConsumer.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop event consumer")
	}

	s.mu.Lock()
	for matchID, carousel := range s.carousels {
		carousel.Stop()
		delete(s.carousels, matchID)
	}
	s.mu.Unlock()

	log.Info().Msg("overlay gateway service stopped")
	return nil
}

// RegisterRoutes registers the public overlay routes.
func (s *Service) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ws/overlay", s.wsHandler.HandleOverlayConnection).Methods(http.MethodGet)
	router.HandleFunc("/ws/stats", s.wsHandler.HandleConnectionStats).Methods(http.MethodGet)
	router.HandleFunc("/overlay/matches/{id}", s.overlayHandler.GetOverlayState).Methods(http.MethodGet)
	router.HandleFunc("/overlay/matches/{id}/sponsors", s.overlayHandler.GetOverlaySponsors).Methods(http.MethodGet)
	log.Info().Msg("overlay gateway routes registered")
}

// GetStats returns gateway statistics.
func (s *Service) GetStats() map[string]interface{} {
	stats := s.connectionManager.GetConnectionStats()
	stats["service"] = "overlay_gateway"
	stats["status"] = "running"
	return stats
}

// startCarousel spins up the sponsor ticker when a match gains its first
// subscriber. Matches with no tournament or no active sponsors get none.
func (s *Service) startCarousel(matchID uuid.UUID) {
	s.mu.Lock()
	ctx := s.runCtx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := s.snapshots.GetMatch(ctx, matchID)
	if err != nil || m.TournamentID == nil {
		return
	}

	sponsors, err := s.snapshots.GetActiveSponsors(ctx, *m.TournamentID)
	if err != nil {
		log.Warn().Err(err).Str("match_id", matchID.String()).Msg("failed to load sponsors for carousel")
		return
	}
	if len(sponsors) == 0 {
		return
	}

	tournamentID := *m.TournamentID
	carousel := NewCarousel(s.clock, s.carouselInterval, len(sponsors), func(index, total int) {
		frame, err := NewOverlayFrame(FrameTypeSponsorRotation, matchID.String(), time.Now(), SponsorRotationPayload{
			Index:     index,
			Total:     total,
			RotatedAt: time.Now(),
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to build rotation frame")
			return
		}
		s.connectionManager.BroadcastToMatch(matchID, frame)
	})

	// Sponsor CRUD during the match changes the rotation on the next tick;
	// a shrinking list folds the index instead of outliving it.
	carousel.RefreshWith(func() (int, bool) {
		sponsors, err := s.snapshots.GetActiveSponsors(ctx, tournamentID)
		if err != nil {
			return 0, false
		}
		return len(sponsors), true
	})

	s.mu.Lock()
	if _, exists := s.carousels[matchID]; exists {
		s.mu.Unlock()
		carousel.Stop()
		return
	}
	s.carousels[matchID] = carousel
	s.mu.Unlock()

	carousel.Start(ctx)

	log.Debug().
		Str("match_id", matchID.String()).
		Int("sponsors", len(sponsors)).
		Msg("sponsor carousel started")
}

// stopCarousel tears the ticker down when the last subscriber leaves.
func (s *Service) stopCarousel(matchID uuid.UUID) {
	s.mu.Lock()
	carousel, exists := s.carousels[matchID]
	if exists {
		delete(s.carousels, matchID)
	}
	s.mu.Unlock()

	if exists {
		carousel.Stop()
		log.Debug().Str("match_id", matchID.String()).Msg("sponsor carousel stopped")
	}
}
