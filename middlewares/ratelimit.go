package middlewares

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Counter counts hits per key within a fixed window. Implementations must be
// safe for concurrent use.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type windowEntry struct {
	count int64
	reset time.Time
}

// WindowCounter is the in-process Counter; swap in RedisCounter to share
// limits across instances.
type WindowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

func NewWindowCounter() *WindowCounter {
	return &WindowCounter{entries: make(map[string]*windowEntry)}
}

func (w *WindowCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	// sweep expired entries so the map stays bounded
	for k, e := range w.entries {
		if e.reset.Before(now) {
			delete(w.entries, k)
		}
	}

	e, ok := w.entries[key]
	if !ok {
		w.entries[key] = &windowEntry{count: 1, reset: now.Add(window)}
		return 1, nil
	}
	e.count++
	return e.count, nil
}

// RedisCounter backs the limit with Redis INCR + EXPIRE.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(addr string) *RedisCounter {
	return &RedisCounter{client: redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := r.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		r.client.Expire(ctx, "ratelimit:"+key, window)
	}
	return n, nil
}

// RateLimit rejects clients exceeding max requests per window, keyed by IP.
// A failing counter lets requests through.
func RateLimit(counter Counter, max int64, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if key == "" {
				key = "unknown"
			}
			n, err := counter.Incr(c.Request().Context(), key, window)
			if err != nil {
				return next(c)
			}
			if n > max {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "TOO_MANY_REQUESTS"})
			}
			return next(c)
		}
	}
}
