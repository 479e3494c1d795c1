package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"timevault/shared/cache"
	"timevault/shared/constant"
	"timevault/shared/logger"
	"timevault/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

// rateWindow is the cached state of one client's window. ResetAt is fixed when the window opens
// so later writes keep the original expiry instead of pushing it back.
type rateWindow struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"reset_at"`
}

// RateLimit counts requests per client and user agent in fixed windows kept in the cache.
// Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			if windowSecs <= 0 {
				windowSecs = constant.DefaultRateLimitWindowSeconds
			}

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := cache.BuildKey(cacheKeyRateLimit, clientIP, userAgent)

			now := time.Now().Unix()

			var window rateWindow
			err := a.cache.Get(r.Context(), cacheKey, &window)

			switch {
			case err == nil && window.ResetAt > now:
				window.Count++
			case err == nil || errors.Is(err, cache.Nil):
				window = rateWindow{Count: 1, ResetAt: now + int64(windowSecs)}
			default:
				logger.FromContext(r.Context()).Warn().Err(err).Msg("rate limiter cache read failed")
				next.ServeHTTP(w, r)

				return
			}

			if window.Count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			ttl := max(1, int(window.ResetAt-now))

			err = a.cache.Save(r.Context(), cacheKey, window, ttl)
			if err != nil {
				logger.FromContext(r.Context()).Warn().Err(err).Msg("rate limiter cache write failed")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-window.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// The first address is the original client.
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
