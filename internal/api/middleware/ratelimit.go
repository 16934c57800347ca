package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"LinkUp/internal/api/handlers"
)

// RateLimiter is a fixed-window in-memory limiter keyed by client IP.
// Good enough for a single API server; a multi-instance deployment would
// need a shared backend.
type RateLimiter struct {
	clients  map[string]*clientWindow
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientWindow struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter allows requests per window for each client IP
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
	}
	go rl.evictExpired()
	return rl
}

// Middleware returns the chi-compatible rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			handlers.WriteFailure(w, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	window, ok := rl.clients[clientID]
	if !ok || now.After(window.resetAt) {
		rl.clients[clientID] = &clientWindow{count: 1, resetAt: now.Add(rl.window)}
		return true
	}

	if window.count >= rl.requests {
		return false
	}
	window.count++
	return true
}

// evictExpired drops stale windows so the map doesn't grow unboundedly
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for id, window := range rl.clients {
			if now.After(window.resetAt) {
				delete(rl.clients, id)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP prefers proxy headers, falling back to the socket address
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
