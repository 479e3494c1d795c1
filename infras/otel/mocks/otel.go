package mocks

import (
	"context"
	"sync"

	"timevault/infras/otel"
)

// Otel is a no-op tracer that remembers which spans were opened.
type Otel struct {
	mu    sync.Mutex
	spans []string
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &Scope{}
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the span names opened so far, in order.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

func NewOtel() *Otel {
	return &Otel{}
}

// Scope discards everything.
type Scope struct{}

func (s *Scope) End() {}
func (s *Scope) TraceError(_ error) {}
func (s *Scope) TraceIfError(_ error) {}
func (s *Scope) AddEvent(_ string) {}
func (s *Scope) SetAttribute(_ string, _ any) {}
func (s *Scope) SetAttributes(_ map[string]any) {}
