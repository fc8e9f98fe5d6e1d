package gateway

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testFrame(t *testing.T, matchID uuid.UUID) *OverlayFrame {
	t.Helper()
	frame, err := NewOverlayFrame(FrameTypeOverlayState, matchID.String(), time.Now(), HiddenOverlayState())
	if err != nil {
		t.Fatalf("failed to build frame: %v", err)
	}
	return frame
}

func TestBroadcastDuringUnregisterDoesNotPanic(t *testing.T) {
	// A pump can close a connection's Send channel while handleBroadcast is
	// walking its snapshot of the pool; the send must be suppressed, not
	// panic on the closed channel.
	cm := NewConnectionManager(DefaultConnectionConfig())
	matchID := uuid.New()
	frame := testFrame(t, matchID)

	for i := 0; i < 1000; i++ {
		conn := &Connection{
			ID:      uuid.New().String(),
			MatchID: matchID,
			Send:    make(chan []byte, 4),
			Manager: cm,
		}
		cm.registerConnection(conn)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cm.unregisterConnection(conn)
		}()
		go func() {
			defer wg.Done()
			cm.handleBroadcast(broadcastMessage{matchID: matchID, frame: frame})
		}()
		wg.Wait()
	}

	if cm.HasSubscribers(matchID) {
		t.Error("subscribers remain after every connection unregistered")
	}
}

func TestEnqueueAfterCloseSwallowsFrame(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	conn := &Connection{
		ID:      uuid.New().String(),
		MatchID: uuid.New(),
		Send:    make(chan []byte, 1),
		Manager: cm,
	}
	cm.registerConnection(conn)
	cm.unregisterConnection(conn)

	if !conn.enqueue([]byte("late frame")) {
		t.Error("enqueue on closed connection reported a full buffer")
	}
}

func TestEnqueueReportsFullBuffer(t *testing.T) {
	conn := &Connection{
		ID:   uuid.New().String(),
		Send: make(chan []byte, 1),
	}

	if !conn.enqueue([]byte("first")) {
		t.Fatal("enqueue failed with room in the buffer")
	}
	if conn.enqueue([]byte("second")) {
		t.Error("enqueue succeeded with a full buffer, want eviction signal")
	}
}

func TestUnregisterIsIdempotent(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	var lastCalls int
	cm.OnLastUnsubscribe = func(uuid.UUID) { lastCalls++ }

	conn := &Connection{
		ID:      uuid.New().String(),
		MatchID: uuid.New(),
		Send:    make(chan []byte, 1),
		Manager: cm,
	}
	cm.registerConnection(conn)

	// Both pumps unregister on exit; the second call must be a no-op.
	cm.unregisterConnection(conn)
	cm.unregisterConnection(conn)

	if lastCalls != 1 {
		t.Errorf("OnLastUnsubscribe fired %d times, want 1", lastCalls)
	}
}
