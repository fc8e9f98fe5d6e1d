package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ConnectionManager owns the websocket connection pools, one pool per match.
// Overlay subscriptions are public: there is no user identity on a pool.
type ConnectionManager struct {
	matchConnections map[uuid.UUID]map[*Connection]bool
	mu               sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig

	broadcastCh chan broadcastMessage

	// Subscription lifecycle hooks, used to start and tear down per-match
	// sponsor carousels. Optional.
	OnFirstSubscriber func(matchID uuid.UUID)
	OnLastUnsubscribe func(matchID uuid.UUID)
}

// Connection is one overlay client.
type Connection struct {
	ID      string
	MatchID uuid.UUID
	Conn    *websocket.Conn
	Send    chan []byte
	Manager *ConnectionManager

	ConnectedAt time.Time

	// closed guards Send: once set, nothing may send on the channel. Both
	// pumps can unregister while a broadcast is walking its target list.
	mu     sync.Mutex
	closed bool
}

// enqueue queues data for the write pump. It reports false only when the
// connection is alive but its buffer is full; a closed connection swallows
// the frame.
func (c *Connection) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// ConnectionConfig holds websocket tuning.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

type broadcastMessage struct {
	matchID uuid.UUID
	frame   *OverlayFrame
}

// DefaultConnectionConfig returns production websocket settings. Origin
// checking stays open because OBS browser sources send no Origin header.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// NewConnectionManager creates a connection manager.
func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		matchConnections: make(map[uuid.UUID]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan broadcastMessage, 1000),
	}
}

// Start processes broadcast messages until ctx is cancelled.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

// UpgradeConnection upgrades an HTTP request to a websocket subscribed to
// one match. initialFrames are written before any broadcast reaches the
// client so the overlay paints without waiting for the next event.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, matchID uuid.UUID, initialFrames ...*OverlayFrame) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:          uuid.New().String(),
		MatchID:     matchID,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Manager:     cm,
		ConnectedAt: time.Now(),
	}

	for _, frame := range initialFrames {
		data, err := json.Marshal(frame)
		if err != nil {
			conn.Close()
			return fmt.Errorf("failed to marshal initial frame: %w", err)
		}
		connection.Send <- data
	}

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("connection_id", connection.ID).
		Str("match_id", matchID.String()).
		Msg("overlay connection established")

	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	first := cm.matchConnections[conn.MatchID] == nil
	if first {
		cm.matchConnections[conn.MatchID] = make(map[*Connection]bool)
	}
	cm.matchConnections[conn.MatchID][conn] = true
	total := len(cm.matchConnections[conn.MatchID])
	cm.mu.Unlock()

	if first && cm.OnFirstSubscriber != nil {
		cm.OnFirstSubscriber(conn.MatchID)
	}

	log.Debug().
		Str("connection_id", conn.ID).
		Str("match_id", conn.MatchID.String()).
		Int("total_connections", total).
		Msg("connection registered")
}

func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	last := false
	if connections, exists := cm.matchConnections[conn.MatchID]; exists {
		if _, exists := connections[conn]; exists {
			delete(connections, conn)

			conn.mu.Lock()
			conn.closed = true
			close(conn.Send)
			conn.mu.Unlock()

			if len(connections) == 0 {
				delete(cm.matchConnections, conn.MatchID)
				last = true
			}

			log.Info().
				Str("connection_id", conn.ID).
				Str("match_id", conn.MatchID.String()).
				Msg("connection unregistered")
		}
	}
	cm.mu.Unlock()

	if last && cm.OnLastUnsubscribe != nil {
		cm.OnLastUnsubscribe(conn.MatchID)
	}
}

// BroadcastToMatch queues a frame for every subscriber of the match.
func (cm *ConnectionManager) BroadcastToMatch(matchID uuid.UUID, frame *OverlayFrame) {
	select {
	case cm.broadcastCh <- broadcastMessage{matchID: matchID, frame: frame}:
	default:
		log.Warn().Str("match_id", matchID.String()).Msg("broadcast channel full, dropping frame")
	}
}

// HasSubscribers reports whether any overlay is watching the match.
func (cm *ConnectionManager) HasSubscribers(matchID uuid.UUID) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.matchConnections[matchID]) > 0
}

func (cm *ConnectionManager) handleBroadcast(message broadcastMessage) {
	cm.mu.RLock()
	connections, exists := cm.matchConnections[message.matchID]
	if !exists {
		cm.mu.RUnlock()
		return
	}

	targets := make([]*Connection, 0, len(connections))
	for conn := range connections {
		targets = append(targets, conn)
	}
	cm.mu.RUnlock()

	frameData, err := json.Marshal(message.frame)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal frame for broadcast")
		return
	}

	for _, conn := range targets {
		if !conn.enqueue(frameData) {
			// Slow or dead client, evict it rather than stall the pool.
			log.Warn().
				Str("connection_id", conn.ID).
				Msg("connection send buffer full, closing connection")
			cm.unregisterConnection(conn)
			conn.Conn.Close()
		}
	}

	log.Debug().
		Str("frame_type", string(message.frame.Type)).
		Str("match_id", message.matchID.String()).
		Int("connections", len(targets)).
		Msg("frame broadcasted")
}

// GetConnectionStats returns counts of active connections per match.
func (cm *ConnectionManager) GetConnectionStats() map[string]interface{} {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	totalConnections := 0
	matchCounts := make(map[string]int)

	for matchID, connections := range cm.matchConnections {
		count := len(connections)
		totalConnections += count
		matchCounts[matchID.String()] = count
	}

	return map[string]interface{}{
		"total_connections": totalConnections,
		"active_matches":    len(cm.matchConnections),
		"match_connections": matchCounts,
	}
}

// writePump drains Send onto the wire and keeps the connection alive with
// pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write frame to websocket")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages. The overlay never sends application
// data; reading only services pongs and surfaces closes.
func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected websocket close error")
			}
			break
		}
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
