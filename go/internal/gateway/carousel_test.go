package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func startTestCarousel(t *testing.T, total int) (*Carousel, *clockwork.FakeClock, chan int) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rotations := make(chan int, 64)

	c := NewCarousel(clock, DefaultCarouselInterval, total, func(index, total int) {
		rotations <- index
	})
	c.Start(context.Background())
	t.Cleanup(c.Stop)

	// Wait for the rotation goroutine to arm its ticker before advancing.
	clock.BlockUntil(1)
	return c, clock, rotations
}

func nextRotation(t *testing.T, rotations chan int) int {
	t.Helper()
	select {
	case i := <-rotations:
		return i
	case <-time.After(2 * time.Second):
		t.Fatal("no rotation within 2s")
		return 0
	}
}

func TestCarouselCyclesThroughAllSponsors(t *testing.T) {
	_, clock, rotations := startTestCarousel(t, 3)

	want := []int{1, 2, 0, 1}
	for _, w := range want {
		clock.Advance(DefaultCarouselInterval)
		if got := nextRotation(t, rotations); got != w {
			t.Fatalf("rotation index = %d, want %d", got, w)
		}
	}
}

func TestCarouselSingleSponsorStaysAtZero(t *testing.T) {
	_, clock, rotations := startTestCarousel(t, 1)

	for i := 0; i < 3; i++ {
		clock.Advance(DefaultCarouselInterval)
		if got := nextRotation(t, rotations); got != 0 {
			t.Fatalf("rotation index = %d with one sponsor, want 0", got)
		}
	}
}

func TestCarouselEmptyListNeverStarts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := false
	c := NewCarousel(clock, DefaultCarouselInterval, 0, func(index, total int) {
		fired = true
	})
	c.Start(context.Background())
	defer c.Stop()

	// Start returned without arming a ticker; there is nothing to advance.
	if fired {
		t.Error("onRotate fired for an empty sponsor list")
	}
	if got := c.Index(); got != 0 {
		t.Errorf("Index = %d, want 0", got)
	}
}

func TestCarouselResizeShrinkFoldsIndex(t *testing.T) {
	c, clock, rotations := startTestCarousel(t, 5)

	// Rotate to index 4.
	for i := 0; i < 4; i++ {
		clock.Advance(DefaultCarouselInterval)
		nextRotation(t, rotations)
	}
	if got := c.Index(); got != 4 {
		t.Fatalf("Index = %d before resize, want 4", got)
	}

	c.Resize(2)
	if got := c.Index(); got != 0 {
		t.Errorf("Index = %d after shrinking to 2, want folded 0", got)
	}

	// Rotation continues within the new bounds.
	clock.Advance(DefaultCarouselInterval)
	if got := nextRotation(t, rotations); got != 1 {
		t.Errorf("rotation index = %d after resize, want 1", got)
	}
}

func TestCarouselResizeToZeroParksAtZero(t *testing.T) {
	c, clock, rotations := startTestCarousel(t, 3)

	clock.Advance(DefaultCarouselInterval)
	nextRotation(t, rotations)

	c.Resize(0)
	if got := c.Index(); got != 0 {
		t.Errorf("Index = %d after resize to 0, want 0", got)
	}

	// Ticks with nothing to rotate produce no callbacks.
	clock.Advance(DefaultCarouselInterval)
	select {
	case i := <-rotations:
		t.Errorf("unexpected rotation to %d after resize to 0", i)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCarouselRefreshTracksSponsorEdits(t *testing.T) {
	c, clock, rotations := startTestCarousel(t, 5)

	var mu sync.Mutex
	total, refreshOK := 5, true
	c.RefreshWith(func() (int, bool) {
		mu.Lock()
		defer mu.Unlock()
		return total, refreshOK
	})

	// Rotate to index 4.
	for i := 0; i < 4; i++ {
		clock.Advance(DefaultCarouselInterval)
		nextRotation(t, rotations)
	}

	// The sponsor list shrinks mid-subscription; the next tick picks it up,
	// folds the index and keeps rotating within the new bounds.
	mu.Lock()
	total = 2
	mu.Unlock()
	clock.Advance(DefaultCarouselInterval)
	if got := nextRotation(t, rotations); got != 1 {
		t.Fatalf("rotation index = %d after shrink to 2, want 1", got)
	}

	// A failed refresh keeps the last known count.
	mu.Lock()
	refreshOK = false
	mu.Unlock()
	clock.Advance(DefaultCarouselInterval)
	if got := nextRotation(t, rotations); got != 0 {
		t.Fatalf("rotation index = %d after failed refresh, want 0", got)
	}

	// Growth widens the rotation again.
	mu.Lock()
	total, refreshOK = 3, true
	mu.Unlock()
	for _, want := range []int{1, 2, 0} {
		clock.Advance(DefaultCarouselInterval)
		if got := nextRotation(t, rotations); got != want {
			t.Fatalf("rotation index = %d after grow to 3, want %d", got, want)
		}
	}
}

func TestCarouselStopIsIdempotent(t *testing.T) {
	c, _, _ := startTestCarousel(t, 2)
	c.Stop()
	c.Stop()
}
