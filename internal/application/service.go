package application

import (
	"context"
	"fmt"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// remoteBaselineDays sizes the remote window fetched when the ledger has no
// entry for yesterday; only the last two points are used.
const remoteBaselineDays = 5

// PriceService is the single read surface page collaborators consume. It
// never exposes adapters or resolver internals and never fails a read: every
// call yields some provenance-tagged data.
type PriceService struct {
	resolver *FallbackResolver
	history  HistoryRepo
	series   HistorySeriesProvider
	cache    PriceCache
	params   PricingParams
	variants []domain.VariantOffset
	clock    Clock
}

type Option func(*PriceService)

func WithClock(c Clock) Option { return func(s *PriceService) { s.clock = c } }

func NewPriceService(resolver *FallbackResolver, history HistoryRepo, series HistorySeriesProvider, cache PriceCache, params PricingParams, variants []domain.VariantOffset, opts ...Option) *PriceService {
	s := &PriceService{
		resolver: resolver,
		history:  history,
		series:   series,
		cache:    cache,
		params:   params,
		variants: variants,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NoopCache{}
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

// CurrentPrice resolves the current PriceRecord, cache first.
func (s *PriceService) CurrentPrice(ctx context.Context) domain.PriceRecord {
	key := s.cacheKey()
	if rec, ok := s.cache.Get(ctx, key); ok {
		return rec
	}
	rec := s.withChange(ctx, s.resolver.Resolve(ctx))
	s.cache.Set(ctx, key, rec)
	return rec
}

// HistoricalRange returns up to days entries, most-recent-last. Local ledger
// entries are always served; the remote series only backfills dates the
// ledger does not cover.
func (s *PriceService) HistoricalRange(ctx context.Context, days int) []domain.HistoricalEntry {
	local, err := s.history.Range(ctx, days)
	if err != nil {
		local = nil // storage degraded; serve remote coverage best effort
	}
	if len(local) >= days || s.series == nil {
		return local
	}
	remote, err := s.series.Series(ctx, days)
	if err != nil {
		return local
	}
	merged := MergeSeries(local, remote)
	if len(merged) > days {
		merged = merged[len(merged)-days:]
	}
	return merged
}

// VariantPrices expands the current price across the configured market
// offsets, preserving configuration order.
func (s *PriceService) VariantPrices(ctx context.Context) []domain.VariantPrice {
	return ExpandVariants(s.CurrentPrice(ctx), s.variants)
}

// Variants exposes the static offset table for presentation collaborators.
func (s *PriceService) Variants() []domain.VariantOffset { return s.variants }

// ResolverStatus reports the last resolution outcome.
func (s *PriceService) ResolverStatus() ResolverStatus { return s.resolver.Status() }

// ResolverError reports why the last resolution degraded to the simulated
// seed; nil while any strategy is still producing.
func (s *PriceService) ResolverError() error { return s.resolver.LastError() }

// RecordToday resolves a fresh price (bypassing the cache) and writes the
// day's ledger entry. Simulated resolutions are served to readers but never
// recorded as ground truth.
func (s *PriceService) RecordToday(ctx context.Context) (domain.HistoricalEntry, error) {
	rec := s.resolver.Resolve(ctx)
	if rec.Source == domain.ProvenanceSimulated {
		return domain.HistoricalEntry{}, ErrSimulatedPrice
	}
	now := s.clock.Now().UTC()
	e := domain.HistoricalEntry{
		Date:           domain.Day(now),
		Gram:           rec.Gram,
		Source:         rec.Source,
		FormulaVersion: rec.FormulaVersion,
		RecordedAt:     now,
	}
	if err := s.history.RecordDay(ctx, e); err != nil {
		return domain.HistoricalEntry{}, fmt.Errorf("record day: %w", err)
	}
	return e, nil
}

func (s *PriceService) withChange(ctx context.Context, rec domain.PriceRecord) domain.PriceRecord {
	yesterday := domain.Day(s.clock.Now()).AddDate(0, 0, -1)
	if prior, err := s.history.Entry(ctx, yesterday); err == nil {
		rec.Change, rec.ChangePercent, rec.ChangeBasis = ComputeChange(rec.Gram, &prior, nil)
		return rec
	}
	var remote []domain.SeriesPoint
	if s.series != nil {
		remote, _ = s.series.Series(ctx, remoteBaselineDays)
	}
	rec.Change, rec.ChangePercent, rec.ChangeBasis = ComputeChange(rec.Gram, nil, remote)
	return rec
}

func (s *PriceService) cacheKey() string {
	return "price:current:" + s.params.Metal + ":" + s.params.Currency
}
