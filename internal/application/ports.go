package application

import (
	"context"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// QuoteProvider fetches one upstream observation for a named instrument.
// Implementations own their timeout and convert every failure to
// domain.ErrUpstreamUnavailable; nothing else crosses the boundary.
type QuoteProvider interface {
	Fetch(ctx context.Context, instrument string) (domain.Quote, error)
}

// GramPriceProvider is an aggregator that quotes the metal directly in local
// currency per fine gram, before markup.
type GramPriceProvider interface {
	GramPrice(ctx context.Context) (domain.Quote, error)
}

// SeriesSource fetches a raw remote historical series for an instrument.
type SeriesSource interface {
	RawSeries(ctx context.Context, instrument string, days int) ([]domain.SeriesPoint, error)
}

// HistorySeriesProvider yields a historical series already localized to
// currency per gram, comparable with ledger entries.
type HistorySeriesProvider interface {
	Series(ctx context.Context, days int) ([]domain.SeriesPoint, error)
}

// HistoryRepo is the daily price ledger. Writes are last-per-date-wins.
type HistoryRepo interface {
	RecordDay(ctx context.Context, e domain.HistoricalEntry) error
	Entry(ctx context.Context, date time.Time) (domain.HistoricalEntry, error)
	Range(ctx context.Context, days int) ([]domain.HistoricalEntry, error)
}

// PriceCache memoizes resolved records for a fixed TTL. Expired or corrupt
// entries read as absent; Set failures are swallowed.
type PriceCache interface {
	Get(ctx context.Context, key string) (domain.PriceRecord, bool)
	Set(ctx context.Context, key string, rec domain.PriceRecord)
}

// NoopCache disables caching; useful for tests and the worker.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (domain.PriceRecord, bool) {
	return domain.PriceRecord{}, false
}
func (NoopCache) Set(context.Context, string, domain.PriceRecord) {}

// Strategy is one way of producing a PriceRecord. Strategies are tried in
// priority order by the resolver and know nothing about that order.
type Strategy interface {
	Name() domain.Provenance
	Attempt(ctx context.Context) (domain.PriceRecord, error)
}
