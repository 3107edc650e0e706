package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused per-IP limiter is kept.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client IP,
// with bursts up to the same size.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := time.Minute / time.Duration(maxPerMinute)
	retryAfter := strconv.Itoa(int(every.Seconds()) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := rl.visitor(clientIP(r), every, maxPerMinute)
			if !v.limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) visitor(key string, every time.Duration, burst int) *visitor {
	now := time.Now()
	val, loaded := rl.visitors.Load(key)
	if !loaded {
		val, _ = rl.visitors.LoadOrStore(key, &visitor{
			limiter:  rate.NewLimiter(rate.Every(every), burst),
			lastSeen: now,
		})
	}

	v := val.(*visitor)
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
	return v
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.visitors.Range(func(key, value any) bool {
				v := value.(*visitor)
				v.mu.Lock()
				idle := now.Sub(v.lastSeen)
				v.mu.Unlock()
				if idle > idleTTL {
					rl.visitors.Delete(key)
				}
				return true
			})
		}
	}
}

// clientIP strips the port from RemoteAddr so every connection of a client
// shares one bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
