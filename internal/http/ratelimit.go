package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit budgets requests per client IP over a sliding refill window.
type RateLimit struct {
	Requests int
	Window   time.Duration
}

type tokenBucket struct {
	tokens int
	last   time.Time
}

// rateLimitMiddleware applies a per-IP token bucket to the API prefix.
// A zero budget disables limiting.
func rateLimitMiddleware(limit RateLimit) gin.HandlerFunc {
	if limit.Requests <= 0 || limit.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	per := limit.Window / time.Duration(limit.Requests)
	var (
		mu      sync.Mutex
		buckets = make(map[string]*tokenBucket)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		b, ok := buckets[ip]
		if !ok {
			b = &tokenBucket{tokens: limit.Requests, last: time.Now()}
			buckets[ip] = b
		} else {
			elapsed := time.Since(b.last)
			if refill := int(elapsed / per); refill > 0 {
				b.tokens += refill
				if b.tokens > limit.Requests {
					b.tokens = limit.Requests
				}
				b.last = b.last.Add(time.Duration(refill) * per)
			}
		}
		allowed := b.tokens > 0
		if allowed {
			b.tokens--
		}
		mu.Unlock()

		if !allowed {
			abortWithError(c, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			return
		}
		c.Next()
	}
}
