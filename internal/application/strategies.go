package application

import (
	"context"
	"fmt"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/pricing"
)

// LiveComputeStrategy derives the local price from two independent live
// feeds: an international futures quote and an exchange rate. Both must
// succeed; it never borrows data from another strategy.
type LiveComputeStrategy struct {
	Spot           QuoteProvider
	FX             QuoteProvider
	SpotInstrument string
	FXInstrument   string
	Params         PricingParams
	Clock          Clock
}

var _ Strategy = (*LiveComputeStrategy)(nil)

func (s *LiveComputeStrategy) Name() domain.Provenance { return domain.ProvenanceLive }

func (s *LiveComputeStrategy) Attempt(ctx context.Context) (domain.PriceRecord, error) {
	spot, err := s.Spot.Fetch(ctx, s.SpotInstrument)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("spot %s: %w", s.SpotInstrument, err)
	}
	fx, err := s.FX.Fetch(ctx, s.FXInstrument)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("fx %s: %w", s.FXInstrument, err)
	}
	gram, err := pricing.Localize(spot.Value, fx.Value, s.Params.Purity, s.Params.Formula)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	return s.Params.Record(gram, domain.ProvenanceLive, now(s.Clock)), nil
}

// AggregatorStrategy wraps one paid aggregator that quotes a local per-gram
// base price; the markup formula is still applied on top.
type AggregatorStrategy struct {
	Provider GramPriceProvider
	Tag      domain.Provenance
	Params   PricingParams
	Clock    Clock
}

var _ Strategy = (*AggregatorStrategy)(nil)

func (s *AggregatorStrategy) Name() domain.Provenance { return s.Tag }

func (s *AggregatorStrategy) Attempt(ctx context.Context) (domain.PriceRecord, error) {
	q, err := s.Provider.GramPrice(ctx)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	gram, err := pricing.MarkupGram(q.Value, s.Params.Purity, s.Params.Formula)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	return s.Params.Record(gram, s.Tag, now(s.Clock)), nil
}

// LastKnownStrategy serves the most recent ledger entry. The stored gram
// price is already marked up, so it is only re-denominated.
type LastKnownStrategy struct {
	History HistoryRepo
	Params  PricingParams
	Clock   Clock
}

var _ Strategy = (*LastKnownStrategy)(nil)

func (s *LastKnownStrategy) Name() domain.Provenance { return domain.ProvenanceLastKnown }

func (s *LastKnownStrategy) Attempt(ctx context.Context) (domain.PriceRecord, error) {
	entries, err := s.History.Range(ctx, 1)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("%w: ledger: %v", domain.ErrUpstreamUnavailable, err)
	}
	if len(entries) == 0 {
		return domain.PriceRecord{}, fmt.Errorf("%w: ledger empty", domain.ErrUpstreamUnavailable)
	}
	last := entries[len(entries)-1]
	return s.Params.RecordFromGram(last.Gram, domain.ProvenanceLastKnown, now(s.Clock)), nil
}

// StaticStrategy synthesizes a plausible record from a configured seed. It
// never fails and belongs at the end of the chain.
type StaticStrategy struct {
	SeedGram float64
	Params   PricingParams
	Clock    Clock
}

var _ Strategy = (*StaticStrategy)(nil)

func (s *StaticStrategy) Name() domain.Provenance { return domain.ProvenanceSimulated }

func (s *StaticStrategy) Attempt(context.Context) (domain.PriceRecord, error) {
	return s.Params.RecordFromGram(s.SeedGram, domain.ProvenanceSimulated, now(s.Clock)), nil
}

func now(c Clock) time.Time {
	if c == nil {
		return time.Now()
	}
	return c.Now()
}
