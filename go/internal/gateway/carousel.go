package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultCarouselInterval is how long each sponsor stays on screen.
const DefaultCarouselInterval = 8 * time.Second

// Carousel rotates the sponsor ticker for one match. The index is always in
// [0, total); a shrinking sponsor list folds the index back into bounds
// instead of pointing past the end.
type Carousel struct {
	clock    clockwork.Clock
	interval time.Duration
	onRotate func(index, total int)

	mu      sync.Mutex
	index   int
	total   int
	refresh func() (total int, ok bool)

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewCarousel creates a carousel over total sponsors. onRotate fires with
// each new index; it must not block.
func NewCarousel(clock clockwork.Clock, interval time.Duration, total int, onRotate func(index, total int)) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	if total < 0 {
		total = 0
	}
	return &Carousel{
		clock:    clock,
		interval: interval,
		onRotate: onRotate,
		total:    total,
		stopCh:   make(chan struct{}),
	}
}

// Start rotates until Stop is called or ctx is cancelled. It returns
// immediately when there is nothing to rotate.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	empty := c.total == 0
	c.mu.Unlock()
	if empty {
		return
	}

	go c.run(ctx)
}

// RefreshWith registers fn, consulted before every rotation so sponsor edits
// during a live match reach a long-lived subscription. fn returning ok=false
// keeps the current count.
func (c *Carousel) RefreshWith(fn func() (total int, ok bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refresh = fn
}

func (c *Carousel) run(ctx context.Context) {
	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		case <-ticker.Chan():
			c.maybeRefresh()
			c.advance()
		}
	}
}

func (c *Carousel) maybeRefresh() {
	c.mu.Lock()
	fn := c.refresh
	c.mu.Unlock()
	if fn == nil {
		return
	}
	if total, ok := fn(); ok {
		c.Resize(total)
	}
}

func (c *Carousel) advance() {
	c.mu.Lock()
	if c.total == 0 {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % c.total
	index, total := c.index, c.total
	c.mu.Unlock()

	if c.onRotate != nil {
		c.onRotate(index, total)
	}
}

// Resize adjusts the sponsor count, folding the index back into the new
// bounds when the list shrank.
func (c *Carousel) Resize(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if total <= 0 {
		c.total = 0
		c.index = 0
		return
	}
	c.total = total
	if c.index >= total {
		c.index = c.index % total
	}
}

// Index returns the current sponsor index.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Stop tears the carousel down. Safe to call more than once.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}
