package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"timevault/config"
	otelMocks "timevault/infras/otel/mocks"
	"timevault/shared/cache"
	cacheMocks "timevault/shared/cache/mocks"
	"timevault/shared/constant"
	"timevault/shared/lifecycle"
	"timevault/transport/http/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMiddleware(cfg *config.Config, state *lifecycle.State) middleware.AppMiddleware {
	ot := otelMocks.NewOtel()

	return middleware.NewAppMiddleware(ot, cfg, cache.NewMemoryCache(ot), state)
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	mw := newMiddleware(&config.Config{}, lifecycle.New())

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("minted", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, recorder.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestShutdownGate(t *testing.T) {
	state := lifecycle.New()
	handler := newMiddleware(&config.Config{}, state).ShutdownGate(ok)

	state.Set(lifecycle.ServerStateReady)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	state.Set(lifecycle.ServerStateInGracePeriod)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := newMiddleware(cfg, lifecycle.New()).RateLimit()(ok)

	send := func(ip string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")
		request.Header.Set(constant.RequestHeaderUserAgent, "curl/8")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		return recorder
	}

	first := send("203.0.113.7")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, strconv.Itoa(2), first.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	assert.Equal(t, http.StatusOK, send("203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7").Code)

	assert.Equal(t, http.StatusOK, send("198.51.100.1").Code)
}

func TestRateLimit_FixedWindow(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name      string
		stored    string
		wantCount int
		wantTTL   func(t *testing.T, ttl int)
	}{
		{
			name:      "open window keeps its expiry",
			stored:    fmt.Sprintf(`{"count":2,"reset_at":%d}`, time.Now().Unix()+10),
			wantCount: 3,
			wantTTL: func(t *testing.T, ttl int) {
				assert.LessOrEqual(t, ttl, 10)
				assert.Positive(t, ttl)
			},
		},
		{
			name:      "elapsed window starts over",
			stored:    fmt.Sprintf(`{"count":5,"reset_at":%d}`, time.Now().Unix()-1),
			wantCount: 1,
			wantTTL: func(t *testing.T, ttl int) {
				assert.Equal(t, 60, ttl)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockCache(ctrl)

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any) error {
					return json.Unmarshal([]byte(tt.stored), value)
				})
			mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any, duration int) error {
					raw, err := json.Marshal(value)
					require.NoError(t, err)
					assert.Contains(t, string(raw), fmt.Sprintf(`"count":%d`, tt.wantCount))
					tt.wantTTL(t, duration)

					return nil
				})

			ot := otelMocks.NewOtel()
			handler := middleware.NewAppMiddleware(ot, cfg, mockCache, lifecycle.New()).RateLimit()(ok)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, strconv.Itoa(5-tt.wantCount), recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := newMiddleware(&config.Config{}, lifecycle.New()).RateLimit()(ok)

	for range 5 {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
	}
}

func TestRecoverer(t *testing.T) {
	mw := newMiddleware(&config.Config{}, lifecycle.New())
	handler := mw.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorInternal)
	assert.NotContains(t, recorder.Body.String(), "boom")
}

func TestTracingAndAccessLog(t *testing.T) {
	mw := newMiddleware(&config.Config{}, lifecycle.New())
	handler := mw.Tracing(mw.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/timezone", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	handler := newMiddleware(cfg, lifecycle.New()).CORS()(ok)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Origin", "https://example.com")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
