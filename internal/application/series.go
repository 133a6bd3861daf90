package application

import (
	"context"
	"fmt"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/pricing"
)

// LocalizedSeries turns a raw international close series into local per-gram
// prices using the current exchange rate and markup formula, so its points
// compare directly against ledger entries. The rate is a present-day
// approximation applied across the window; the ledger stays ground truth for
// any date it covers.
type LocalizedSeries struct {
	Chart           SeriesSource
	FX              QuoteProvider
	ChartInstrument string
	FXInstrument    string
	Params          PricingParams
}

var _ HistorySeriesProvider = (*LocalizedSeries)(nil)

func (l *LocalizedSeries) Series(ctx context.Context, days int) ([]domain.SeriesPoint, error) {
	raw, err := l.Chart.RawSeries(ctx, l.ChartInstrument, days)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", l.ChartInstrument, err)
	}
	fx, err := l.FX.Fetch(ctx, l.FXInstrument)
	if err != nil {
		return nil, fmt.Errorf("fx %s: %w", l.FXInstrument, err)
	}

	out := make([]domain.SeriesPoint, 0, len(raw))
	for _, p := range raw {
		gram, err := pricing.Localize(p.Close, fx.Value, l.Params.Purity, l.Params.Formula)
		if err != nil {
			continue // skip holes in the feed, keep the rest of the window
		}
		out = append(out, domain.SeriesPoint{Date: p.Date, Close: pricing.Money(gram)})
	}
	return out, nil
}
