package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"

	"github.com/ulp/panel/internal/response"
)

// limiterTTL is how long an idle client's bucket is remembered.
const limiterTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	cache *ttlcache.Cache[string, *rate.Limiter]
	log   *slog.Logger
}

// NewRateLimiter starts the cache janitor; call Stop when done.
func NewRateLimiter(perSecond float64, burst int, log *slog.Logger) *RateLimiter {
	cache := ttlcache.New[string, *rate.Limiter](
		ttlcache.WithTTL[string, *rate.Limiter](limiterTTL),
		ttlcache.WithDisableTouchOnHit[string, *rate.Limiter](),
	)
	go cache.Start()

	return &RateLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
		cache: cache,
		log:   log,
	}
}

// Stop halts the cache janitor.
func (l *RateLimiter) Stop() {
	l.cache.Stop()
}

// limiterFor returns the bucket for ip, creating it atomically on first use.
func (l *RateLimiter) limiterFor(ip string) *rate.Limiter {
	item, _ := l.cache.GetOrSet(ip, rate.NewLimiter(l.limit, l.burst))
	return item.Value()
}

// Handler rejects requests from clients that exhausted their bucket.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		limiter := l.limiterFor(ip)

		res := limiter.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			l.log.Warn("rate limit exceeded", "path", r.URL.Path, "ip", ip)
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", math.Ceil(delay.Seconds())))
			response.TooManyRequests(w, "Too many attempts. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP expects chi's RealIP middleware to have normalised RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
