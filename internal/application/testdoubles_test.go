package application

import (
	"context"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

var testParams = PricingParams{
	Metal:     "XAG",
	Currency:  "INR",
	Purity:    0.999,
	Formula:   domain.NewMarkupFormula(0.10, 0.03, 0.10, "v1"),
	SpreadPct: 0.02,
	BandPct:   0.015,
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type fakeStrategy struct {
	name  domain.Provenance
	rec   domain.PriceRecord
	err   error
	calls int
}

func (f *fakeStrategy) Name() domain.Provenance { return f.name }

func (f *fakeStrategy) Attempt(context.Context) (domain.PriceRecord, error) {
	f.calls++
	if f.err != nil {
		return domain.PriceRecord{}, f.err
	}
	return f.rec, nil
}

type fakeHistoryRepo struct {
	entries   map[string]domain.HistoricalEntry
	entryErr  error
	rangeErr  error
	recordErr error
	records   int
}

func (f *fakeHistoryRepo) RecordDay(_ context.Context, e domain.HistoricalEntry) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if f.entries == nil {
		f.entries = map[string]domain.HistoricalEntry{}
	}
	f.records++
	f.entries[domain.Day(e.Date).Format(domain.DateLayout)] = e
	return nil
}

func (f *fakeHistoryRepo) Entry(_ context.Context, date time.Time) (domain.HistoricalEntry, error) {
	if f.entryErr != nil {
		return domain.HistoricalEntry{}, f.entryErr
	}
	e, ok := f.entries[domain.Day(date).Format(domain.DateLayout)]
	if !ok {
		return domain.HistoricalEntry{}, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeHistoryRepo) Range(_ context.Context, days int) ([]domain.HistoricalEntry, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	all := MergeSeries(valuesOf(f.entries), nil)
	if days > 0 && len(all) > days {
		all = all[len(all)-days:]
	}
	return all, nil
}

func valuesOf(m map[string]domain.HistoricalEntry) []domain.HistoricalEntry {
	out := make([]domain.HistoricalEntry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	return out
}

type fakeSeries struct {
	points []domain.SeriesPoint
	err    error
	calls  int
}

func (f *fakeSeries) Series(context.Context, int) ([]domain.SeriesPoint, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

type fakeCache struct {
	store map[string]domain.PriceRecord
	sets  int
}

func (f *fakeCache) Get(_ context.Context, key string) (domain.PriceRecord, bool) {
	rec, ok := f.store[key]
	return rec, ok
}

func (f *fakeCache) Set(_ context.Context, key string, rec domain.PriceRecord) {
	if f.store == nil {
		f.store = map[string]domain.PriceRecord{}
	}
	f.sets++
	f.store[key] = rec
}
