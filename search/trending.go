package search

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halalsenpai/electricwheels/config"
)

const (
	trendingKey        = "trending:searches"
	trendingFlushDelay = 500 * time.Millisecond
)

// TrendingRecorder counts submitted search queries and flushes the counts
// to a Redis sorted set. Flushes are debounced so a burst of keystroke
// submissions becomes a single pipeline write. With no Redis client the
// recorder still counts in memory, which keeps tests and redis-less dev
// setups working.
type TrendingRecorder struct {
	mu       sync.Mutex
	counts   map[string]int
	client   *redis.Client
	debounce *Debouncer
}

func NewTrendingRecorder(client *redis.Client) *TrendingRecorder {
	return &TrendingRecorder{
		counts:   make(map[string]int),
		client:   client,
		debounce: NewDebouncer(trendingFlushDelay),
	}
}

// Record notes one submission of query and schedules a flush.
func (t *TrendingRecorder) Record(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minQueryLen {
		return
	}

	t.mu.Lock()
	t.counts[q]++
	t.mu.Unlock()

	t.debounce.Trigger(t.flush)
}

// Pending returns the not-yet-flushed count for a query.
func (t *TrendingRecorder) Pending(query string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[strings.ToLower(strings.TrimSpace(query))]
}

func (t *TrendingRecorder) flush() {
	t.mu.Lock()
	snapshot := t.counts
	t.counts = make(map[string]int)
	t.mu.Unlock()

	if t.client == nil || len(snapshot) == 0 {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	pipe := t.client.Pipeline()
	for q, n := range snapshot {
		pipe.ZIncrBy(ctx, trendingKey, float64(n), q)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// Best effort. Trending data is never worth failing a request over.
		log.Printf("[trending] flush failed: %v", err)
	}
}

// Top returns the n most submitted queries, most popular first.
func (t *TrendingRecorder) Top(n int) ([]string, error) {
	if t.client == nil {
		return nil, nil
	}
	ctx, cancel := config.WithTimeout()
	defer cancel()
	return t.client.ZRevRange(ctx, trendingKey, 0, int64(n-1)).Result()
}
