package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL     = 10 * time.Minute
	limiterCleanupTick = 5 * time.Minute
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out token buckets per client IP and per farmer. A request
// must pass its IP bucket before a farmer bucket is consulted, so rotating
// farmer ids from one address does not buy extra requests. Idle buckets are
// dropped on a ticker until Close is called.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
	once    sync.Once
}

func NewRateLimiter(perMinute float64, burst int) *RateLimiter {
	m := &RateLimiter{
		limit:   rate.Limit(perMinute / 60),
		burst:   burst,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go m.cleanup(limiterCleanupTick)
	return m
}

// Close stops the cleanup goroutine.
func (m *RateLimiter) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *RateLimiter) allow(key string, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// sweep removes buckets not seen since cutoff.
func (m *RateLimiter) sweep(cutoff time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, b := range m.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(m.buckets, key)
		}
	}
}

func (m *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.sweep(now.Add(-limiterIdleTTL))
		}
	}
}

func (m *RateLimiter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}

func (m *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			allowed := m.allow("ip:"+c.RealIP(), now)
			if allowed {
				if id := farmerID(c); id != "" {
					allowed = m.allow("farmer:"+id, now)
				}
			}
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "Too many requests, please slow down"})
			}
			return next(c)
		}
	}
}

// farmerID reads the :farmerId path param, then a farmerId field in a JSON
// body. The body is restored for the handler.
func farmerID(c echo.Context) string {
	if id := c.Param("farmerId"); id != "" {
		return id
	}
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}
	b, err := io.ReadAll(io.LimitReader(req.Body, 1<<20))
	req.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return ""
	}
	var peek struct {
		FarmerID string `json:"farmerId"`
	}
	if json.Unmarshal(b, &peek) != nil {
		return ""
	}
	return peek.FarmerID
}
