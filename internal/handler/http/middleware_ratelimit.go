// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client may stay silent before its bucket is
// dropped. A dropped client starts again with a full burst.
const limiterIdleTTL = 3 * time.Minute

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	limiters  map[string]*clientBucket
	lastSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientLimiter returns nil (no limiting) when perSecond is not positive.
func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*clientBucket),
		now:      time.Now,
	}
}

func (c *clientLimiter) allow(client string) bool {
	if c == nil {
		return true
	}

	c.mu.Lock()
	now := c.now()
	c.sweepLocked(now)
	b, ok := c.limiters[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.limiters[client] = b
	}
	b.lastSeen = now
	c.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// sweepLocked drops idle buckets, at most once per limiterIdleTTL.
func (c *clientLimiter) sweepLocked(now time.Time) {
	if now.Sub(c.lastSweep) < limiterIdleTTL {
		return
	}
	c.lastSweep = now
	for client, b := range c.limiters {
		if now.Sub(b.lastSeen) >= limiterIdleTTL {
			delete(c.limiters, client)
		}
	}
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !h.limiter.allow(client) {
			logger.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			utils.WriteError(w, ErrTooManyRequests.Error(), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
