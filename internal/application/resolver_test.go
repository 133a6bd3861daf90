package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

func Test_Resolve_FirstStrategyWins(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
	first := &fakeStrategy{
		name: domain.ProvenanceLive,
		rec:  testParams.RecordFromGram(102.50, domain.ProvenanceLive, now),
	}
	second := &fakeStrategy{name: domain.AggregatorProvenance("goldapi")}
	r := NewFallbackResolver(testParams, 95, []Strategy{first, second})

	rec := r.Resolve(context.Background())
	require.Equal(t, domain.ProvenanceLive, rec.Source)
	require.InDelta(t, 102.50, rec.Gram, 1e-9)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 0, second.calls, "later strategies must not be consulted")
	require.Equal(t, StatusResolved, r.Status())
	require.NoError(t, r.LastError())
}

func Test_Resolve_FallsThroughInOrder(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
	first := &fakeStrategy{name: domain.ProvenanceLive, err: domain.ErrUpstreamUnavailable}
	second := &fakeStrategy{
		name: domain.AggregatorProvenance("goldapi"),
		rec:  testParams.RecordFromGram(101.00, domain.AggregatorProvenance("goldapi"), now),
	}
	r := NewFallbackResolver(testParams, 95, []Strategy{first, second})

	rec := r.Resolve(context.Background())
	require.Equal(t, domain.AggregatorProvenance("goldapi"), rec.Source)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
	require.Equal(t, StatusResolved, r.Status())
}

func Test_Resolve_TagsUntaggedRecords(t *testing.T) {
	t.Parallel()
	s := &fakeStrategy{
		name: domain.ProvenanceLive,
		rec:  domain.PriceRecord{Gram: 100},
	}
	r := NewFallbackResolver(testParams, 95, []Strategy{s})

	rec := r.Resolve(context.Background())
	require.Equal(t, domain.ProvenanceLive, rec.Source)
}

func Test_Resolve_AllStrategiesExhausted(t *testing.T) {
	t.Parallel()
	clock := fakeClock{t: time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)}
	first := &fakeStrategy{name: domain.ProvenanceLive, err: domain.ErrUpstreamUnavailable}
	second := &fakeStrategy{name: domain.ProvenanceLastKnown, err: domain.ErrUpstreamUnavailable}
	r := NewFallbackResolver(testParams, 95, []Strategy{first, second}, WithResolverClock(clock))

	rec := r.Resolve(context.Background())
	require.Equal(t, domain.ProvenanceSimulated, rec.Source)
	require.InDelta(t, 95.00, rec.Gram, 1e-9)
	require.Equal(t, clock.t, rec.ResolvedAt)
	require.Equal(t, StatusDegraded, r.Status())
	require.ErrorIs(t, r.LastError(), domain.ErrAllStrategiesExhausted)

	// A later successful resolution clears the failure.
	first.err = nil
	first.rec = testParams.RecordFromGram(102.50, domain.ProvenanceLive, clock.t)
	r.Resolve(context.Background())
	require.NoError(t, r.LastError())
}

func Test_Resolve_DegradedStatusForStaleSources(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
	s := &fakeStrategy{
		name: domain.ProvenanceLastKnown,
		rec:  testParams.RecordFromGram(99.00, domain.ProvenanceLastKnown, now),
	}
	r := NewFallbackResolver(testParams, 95, []Strategy{s})

	rec := r.Resolve(context.Background())
	require.Equal(t, domain.ProvenanceLastKnown, rec.Source)
	require.Equal(t, StatusDegraded, r.Status())
}
