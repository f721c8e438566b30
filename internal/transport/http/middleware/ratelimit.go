package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"staffdir/internal/transport/http/api"
)

// sweepThreshold is the number of tracked clients above which expired
// windows are dropped on the next call.
const sweepThreshold = 1024

type RateLimitKeyFunc func(r *http.Request) string

type RateLimitOption func(*Limiter)

func WithKeyFunc(fn RateLimitKeyFunc) RateLimitOption {
	return func(l *Limiter) {
		if fn != nil {
			l.keyFn = fn
		}
	}
}

func withNow(fn func() time.Time) RateLimitOption {
	return func(l *Limiter) {
		l.now = fn
	}
}

// Quota is the outcome of one Allow call.
type Quota struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

type window struct {
	used  int
	until time.Time
}

// Limiter admits at most limit requests per client within each fixed window.
// One Limiter may guard several routes so they share the same budget.
type Limiter struct {
	limit  int
	period time.Duration
	keyFn  RateLimitKeyFunc
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewLimiter builds a limiter keyed by client IP unless WithKeyFunc is given.
// A non-positive limit admits everything.
func NewLimiter(limit int, period time.Duration, opts ...RateLimitOption) *Limiter {
	l := &Limiter{
		limit:   limit,
		period:  period,
		keyFn:   ClientIPKey,
		now:     time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RateLimit is shorthand for NewLimiter(...).Handler.
func RateLimit(limit int, period time.Duration, opts ...RateLimitOption) func(http.Handler) http.Handler {
	return NewLimiter(limit, period, opts...).Handler
}

func (l *Limiter) Allow(key string) Quota {
	if l.limit <= 0 {
		return Quota{Allowed: true}
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.windows) >= sweepThreshold {
		for k, w := range l.windows {
			if now.After(w.until) {
				delete(l.windows, k)
			}
		}
	}

	w, ok := l.windows[key]
	if !ok || now.After(w.until) {
		w = &window{until: now.Add(l.period)}
		l.windows[key] = w
	}
	w.used++

	return Quota{
		Allowed:   w.used <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-w.used, 0),
		ResetIn:   w.until.Sub(now),
	}
}

func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.keyFn(r)
		if key == "" {
			key = ClientIPKey(r)
		}
		quota := l.Allow(key)
		if quota.Limit == 0 {
			next.ServeHTTP(w, r)
			return
		}

		resetIn := ceilSeconds(quota.ResetIn)
		headers := w.Header()
		headers.Set("X-RateLimit-Limit", strconv.Itoa(quota.Limit))
		headers.Set("X-RateLimit-Remaining", strconv.Itoa(quota.Remaining))
		headers.Set("X-RateLimit-Reset", strconv.Itoa(resetIn))

		if !quota.Allowed {
			headers.Set("Retry-After", strconv.Itoa(max(resetIn, 1)))
			slog.WarnContext(r.Context(), "rate limit exceeded",
				"client", key,
				"method", r.Method,
				"path", r.URL.Path,
				"limit", quota.Limit,
			)
			api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIPKey identifies the caller by the first X-Forwarded-For hop, falling
// back to the connection's remote host.
func ClientIPKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	remote := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}
	return remote
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
