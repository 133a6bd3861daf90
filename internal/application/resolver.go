package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// ResolverStatus is observable state, not a gate: concurrent resolutions are
// independent and may each hit upstreams (no request coalescing).
type ResolverStatus int32

const (
	StatusIdle ResolverStatus = iota
	StatusResolving
	StatusResolved
	StatusDegraded
)

func (s ResolverStatus) String() string {
	switch s {
	case StatusResolving:
		return "resolving"
	case StatusResolved:
		return "resolved"
	case StatusDegraded:
		return "degraded"
	default:
		return "idle"
	}
}

// FallbackResolver tries strategies strictly in order and returns the first
// complete result. Partial data from one strategy is never merged with
// another's. If every strategy fails it substitutes a seeded record tagged
// simulated; callers always get some provenance-tagged record, never an
// error.
type FallbackResolver struct {
	strategies []Strategy
	params     PricingParams
	seedGram   float64
	clock      Clock
	status     atomic.Int32

	mu      sync.Mutex
	lastErr error
}

type ResolverOption func(*FallbackResolver)

func WithResolverClock(c Clock) ResolverOption {
	return func(r *FallbackResolver) { r.clock = c }
}

func NewFallbackResolver(params PricingParams, seedGram float64, strategies []Strategy, opts ...ResolverOption) *FallbackResolver {
	r := &FallbackResolver{
		strategies: strategies,
		params:     params,
		seedGram:   seedGram,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = realClock{}
	}
	return r
}

func (r *FallbackResolver) Status() ResolverStatus {
	return ResolverStatus(r.status.Load())
}

// LastError reports why the last resolution fell through to the simulated
// seed, or nil when a strategy produced the record.
func (r *FallbackResolver) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *FallbackResolver) Resolve(ctx context.Context) domain.PriceRecord {
	r.status.Store(int32(StatusResolving))
	var errs []error
	for _, s := range r.strategies {
		rec, err := s.Attempt(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if rec.Source == "" {
			rec.Source = s.Name()
		}
		r.finish(rec.Source, nil)
		return rec
	}
	rec := r.params.RecordFromGram(r.seedGram, domain.ProvenanceSimulated, r.clock.Now())
	r.finish(rec.Source, fmt.Errorf("%w: %v", domain.ErrAllStrategiesExhausted, errors.Join(errs...)))
	return rec
}

func (r *FallbackResolver) finish(source domain.Provenance, err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
	if source.Degraded() {
		r.status.Store(int32(StatusDegraded))
		return
	}
	r.status.Store(int32(StatusResolved))
}
