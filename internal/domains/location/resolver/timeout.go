package resolver

import (
	"context"
	"time"

	"timevault/internal/domains/location/model"
	"timevault/shared/logger"
)

type timeout struct {
	next    Resolver
	timeout time.Duration
}

// NewTimeout bounds every call to next. A call that runs past d, or whose context is
// cancelled first, resolves to Unavailable.
func NewTimeout(next Resolver, d time.Duration) Resolver {
	return &timeout{next: next, timeout: d}
}

func (t *timeout) Resolve(ctx context.Context, location model.Location) model.Resolution {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan model.Resolution, 1)

	go func() {
		done <- t.next.Resolve(ctx, location)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		logger.FromContext(ctx).Warn().
			Err(ctx.Err()).
			Str("location", location.String()).
			Dur("timeout", t.timeout).
			Msg("location resolution did not finish in time")

		return model.Unavailable()
	}
}
