package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	DateFormat = time.RFC3339
)

const (
	// DefaultTimeLayout matches the "yyyy-MM-ddTHH:mm:ss.fffK" pattern clients already send.
	DefaultTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

const (
	OtelServiceScopeName  = "service"
	OtelResolverScopeName = "resolver"
	OtelHandlerScopeName  = "handler"
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

const (
	ResolverDriverStatic    = "static"
	ResolverDriverGazetteer = "gazetteer"
)

const (
	DefaultResolverTimeout = 2 * time.Second
	DefaultCacheTTLSeconds = 3600

	DefaultRateLimitWindowSeconds = 60
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
