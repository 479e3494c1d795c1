package resolver_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"timevault/config"
	otelMocks "timevault/infras/otel/mocks"
	"timevault/internal/domains/location/model"
	"timevault/internal/domains/location/resolver"
	resolverMocks "timevault/internal/domains/location/resolver/mocks"
	"timevault/shared/cache"
	cacheMocks "timevault/shared/cache/mocks"
	"timevault/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolverFunc func(ctx context.Context, location model.Location) model.Resolution

func (f resolverFunc) Resolve(ctx context.Context, location model.Location) model.Resolution {
	return f(ctx, location)
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, model.Found("Europe/Berlin"), resolver.NewStatic("Europe/Berlin").Resolve(ctx, model.Location{City: "Anywhere"}))
	assert.Equal(t, model.NotFound(), resolver.NewStatic("  ").Resolve(ctx, model.Location{City: "Anywhere"}))
}

func TestGazetteer(t *testing.T) {
	g, err := resolver.NewGazetteer()
	require.NoError(t, err)

	tests := []struct {
		name     string
		location model.Location
		want     model.Resolution
	}{
		{
			name:     "city in country",
			location: model.Location{City: "New York", Country: "US"},
			want:     model.Found("America/New_York"),
		},
		{
			name:     "country by name and loose casing",
			location: model.Location{City: " hamburg ", Country: "germany"},
			want:     model.Found("Europe/Berlin"),
		},
		{
			name:     "state when city is unknown",
			location: model.Location{City: "Springfield", StateOrProvince: "IL", Country: "USA"},
			want:     model.Found("America/Chicago"),
		},
		{
			name:     "province by name",
			location: model.Location{StateOrProvince: "British Columbia", Country: "Canada"},
			want:     model.Found("America/Vancouver"),
		},
		{
			name:     "single zone country",
			location: model.Location{City: "Utrecht", Country: "NL"},
			want:     model.Found("Europe/Amsterdam"),
		},
		{
			name:     "multi zone country without city or state",
			location: model.Location{Country: "United States"},
			want:     model.NotFound(),
		},
		{
			name:     "unique city without country",
			location: model.Location{City: "Tokyo"},
			want:     model.Found("Asia/Tokyo"),
		},
		{
			name:     "city name shared by zones without country",
			location: model.Location{City: "Santiago"},
			want:     model.NotFound(),
		},
		{
			name:     "coordinates win",
			location: model.Location{City: "Berlin", Country: "DE", Coordinates: model.Coordinates{Latitude: 40.7128, Longitude: -74.0060, Valid: true}},
			want:     model.Found("America/New_York"),
		},
		{
			name:     "infinite longitude resolves nothing",
			location: model.Location{Coordinates: model.Coordinates{Latitude: 0, Longitude: math.Inf(1), Valid: true}},
			want:     model.NotFound(),
		},
		{
			name:     "nan latitude resolves nothing",
			location: model.Location{Coordinates: model.Coordinates{Latitude: math.NaN(), Longitude: 13.4, Valid: true}},
			want:     model.NotFound(),
		},
		{
			name:     "out of range coordinates fall back to the place name",
			location: model.Location{City: "Paris", Country: "FR", Coordinates: model.Coordinates{Latitude: 91, Longitude: 500, Valid: true}},
			want:     model.Found("Europe/Paris"),
		},
		{
			name:     "unknown place",
			location: model.Location{City: "Atlantis"},
			want:     model.NotFound(),
		},
		{
			name:     "empty location",
			location: model.Location{},
			want:     model.NotFound(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Resolve(context.Background(), tt.location))
		})
	}
}

func TestGazetteer_CancelledContext(t *testing.T) {
	g, err := resolver.NewGazetteer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, model.Unavailable(), g.Resolve(ctx, model.Location{City: "Tokyo"}))
}

func TestTimeout(t *testing.T) {
	slow := resolverFunc(func(ctx context.Context, _ model.Location) model.Resolution {
		select {
		case <-time.After(time.Second):
			return model.Found("Europe/Berlin")
		case <-ctx.Done():
			return model.Unavailable()
		}
	})

	fast := resolverFunc(func(_ context.Context, _ model.Location) model.Resolution {
		return model.Found("Asia/Tokyo")
	})

	assert.Equal(t, model.Unavailable(), resolver.NewTimeout(slow, 10*time.Millisecond).Resolve(context.Background(), model.Location{}))
	assert.Equal(t, model.Found("Asia/Tokyo"), resolver.NewTimeout(fast, time.Second).Resolve(context.Background(), model.Location{}))
}

func TestCached(t *testing.T) {
	location := model.Location{City: "Berlin", Country: "DE"}
	cacheKey := cache.BuildKey("location:resolve", location.Key())

	tests := []struct {
		name      string
		setupMock func(c *cacheMocks.MockCache, r *resolverMocks.MockResolver)
		want      model.Resolution
	}{
		{
			name: "cache hit skips the resolver",
			setupMock: func(c *cacheMocks.MockCache, _ *resolverMocks.MockResolver) {
				c.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Resolution) = model.Found("Europe/Berlin")

						return nil
					})
			},
			want: model.Found("Europe/Berlin"),
		},
		{
			name: "miss stores the result",
			setupMock: func(c *cacheMocks.MockCache, r *resolverMocks.MockResolver) {
				c.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(cache.Nil)
				r.EXPECT().Resolve(gomock.Any(), location).Return(model.Found("Europe/Berlin"))
				c.EXPECT().Save(gomock.Any(), cacheKey, model.Found("Europe/Berlin"), 60).Return(nil)
			},
			want: model.Found("Europe/Berlin"),
		},
		{
			name: "not found is stored too",
			setupMock: func(c *cacheMocks.MockCache, r *resolverMocks.MockResolver) {
				c.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(cache.Nil)
				r.EXPECT().Resolve(gomock.Any(), location).Return(model.NotFound())
				c.EXPECT().Save(gomock.Any(), cacheKey, model.NotFound(), 60).Return(nil)
			},
			want: model.NotFound(),
		},
		{
			name: "unavailable is never stored",
			setupMock: func(c *cacheMocks.MockCache, r *resolverMocks.MockResolver) {
				c.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(cache.Nil)
				r.EXPECT().Resolve(gomock.Any(), location).Return(model.Unavailable())
			},
			want: model.Unavailable(),
		},
		{
			name: "broken cache falls through",
			setupMock: func(c *cacheMocks.MockCache, r *resolverMocks.MockResolver) {
				c.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("connection refused"))
				r.EXPECT().Resolve(gomock.Any(), location).Return(model.Found("Europe/Berlin"))
				c.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 60).Return(errors.New("connection refused"))
			},
			want: model.Found("Europe/Berlin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockCache(ctrl)
			mockResolver := resolverMocks.NewMockResolver(ctrl)

			tt.setupMock(mockCache, mockResolver)

			r := resolver.NewCached(mockResolver, mockCache, 60, otelMocks.NewOtel())
			assert.Equal(t, tt.want, r.Resolve(context.Background(), location))
		})
	}
}

func TestNew(t *testing.T) {
	memory := cache.NewMemoryCache(otelMocks.NewOtel())

	t.Run("static by default", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.LocationResolver.StaticZone = "Asia/Tokyo"

		r, err := resolver.New(cfg, memory, otelMocks.NewOtel())
		require.NoError(t, err)
		assert.Equal(t, model.Found("Asia/Tokyo"), r.Resolve(context.Background(), model.Location{City: "Paris"}))
	})

	t.Run("cached gazetteer", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.LocationResolver.Driver = "gazetteer"
		cfg.LocationResolver.Cache = true
		cfg.Cache.TTL = 60

		r, err := resolver.New(cfg, memory, otelMocks.NewOtel())
		require.NoError(t, err)

		for range 2 {
			assert.Equal(t, model.Found("Europe/Paris"), r.Resolve(context.Background(), model.Location{City: "Paris", Country: "FR"}))
		}
	})

	t.Run("static zone must be loadable", func(t *testing.T) {
		for _, zoneID := range []string{"Mars/Base", "Eastern Standard Time", "Local"} {
			cfg := &config.Config{}
			cfg.LocationResolver.StaticZone = zoneID

			_, err := resolver.New(cfg, memory, otelMocks.NewOtel())
			require.Error(t, err, zoneID)
			assert.ErrorIs(t, err, timezone.ErrUnknownZone)
		}
	})

	t.Run("empty static zone resolves nothing", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.LocationResolver.Driver = "static"
		cfg.LocationResolver.StaticZone = "  "

		r, err := resolver.New(cfg, memory, otelMocks.NewOtel())
		require.NoError(t, err)
		assert.Equal(t, model.NotFound(), r.Resolve(context.Background(), model.Location{City: "Paris"}))
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.LocationResolver.Driver = "geocoder"

		_, err := resolver.New(cfg, memory, otelMocks.NewOtel())
		assert.Error(t, err)
	})
}
