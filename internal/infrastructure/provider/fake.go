package provider

import (
	"context"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// Fake serves a fixed value through every provider port; used in dev and
// tests.
type Fake struct {
	Value float64
}

var (
	_ application.QuoteProvider     = (*Fake)(nil)
	_ application.GramPriceProvider = (*Fake)(nil)
	_ application.SeriesSource      = (*Fake)(nil)
)

func NewFake(value float64) *Fake { return &Fake{Value: value} }

func (f *Fake) Fetch(_ context.Context, instrument string) (domain.Quote, error) {
	return domain.Quote{
		Instrument: instrument,
		Value:      f.Value,
		Provider:   "fake",
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func (f *Fake) GramPrice(context.Context) (domain.Quote, error) {
	return domain.Quote{
		Value:     f.Value,
		Provider:  "fake",
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (f *Fake) RawSeries(_ context.Context, _ string, days int) ([]domain.SeriesPoint, error) {
	day := domain.Day(time.Now())
	points := make([]domain.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		points = append(points, domain.SeriesPoint{
			Date:  day.AddDate(0, 0, -i),
			Close: f.Value,
		})
	}
	return points, nil
}
