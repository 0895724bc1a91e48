package middleware

import (
	"sync"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter memberi tiap key (user, IP) token bucket sendiri.
// Key yang lama tidak dipakai dibuang saat sweep berikutnya.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*keyedLimiter
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*keyedLimiter),
		r:        r,
		b:        b,
		idleTTL:  limiterIdleTTL,
		now:      time.Now,
	}
}

func (l *KeyedRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.idleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &keyedLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *KeyedRateLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// RateLimitByUser membatasi r request per detik dengan burst b per user.
// Request tanpa identitas dilewatkan; AuthMiddleware yang menolaknya.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), actorID)
}

func rateLimit(limiter *KeyedRateLimiter, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}
		if !limiter.Allow(key) {
			abortWith(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
