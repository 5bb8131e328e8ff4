package httpapi

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/example/storefront-state/internal/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// writeLimiter ограничивает частоту записывающих запросов для каждого клиента.
type writeLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newWriteLimiter(perSecond float64, burst int) *writeLimiter {
	if burst < 1 {
		burst = 1
	}
	return &writeLimiter{limiters: make(map[string]*rate.Limiter), rate: rate.Limit(perSecond), burst: burst}
}

func (l *writeLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[key]
	if !ok {
		// простая защита от роста карты
		if len(l.limiters) > 10000 {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

func (l *writeLimiter) Middleware(next http.Handler) http.Handler {
	log := logging.NewLogger("httpapi")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			key = host
		}
		if !l.get(key).Allow() {
			log.WithFields(logrus.Fields{"client": key, "path": r.URL.Path}).Warn("write rate limit exceeded")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
