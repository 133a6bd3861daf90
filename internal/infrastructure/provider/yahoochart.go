package provider

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/httpx"
)

const defaultTimeout = 3 * time.Second

// ChartProvider wraps a Yahoo-style chart endpoint for futures quotes and
// historical close series. The contract is versionless, so the numeric
// fields are revalidated on every call.
type ChartProvider struct {
	BaseURL string
	Unit    string
	Client  *httpx.Client
	Timeout time.Duration
}

var (
	_ application.QuoteProvider = (*ChartProvider)(nil)
	_ application.SeriesSource  = (*ChartProvider)(nil)
)

type chartResp struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
				Currency           string   `json:"currency"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (p *ChartProvider) Fetch(ctx context.Context, instrument string) (domain.Quote, error) {
	body, err := p.get(ctx, instrument, "1d")
	if err != nil {
		return domain.Quote{}, unavailable("chart", err)
	}
	if len(body.Chart.Result) == 0 {
		return domain.Quote{}, unavailable("chart", fmt.Errorf("empty result for %s", instrument))
	}
	price := body.Chart.Result[0].Meta.RegularMarketPrice
	if price == nil || !validPrice(*price) {
		return domain.Quote{}, unavailable("chart", fmt.Errorf("missing market price for %s", instrument))
	}
	return domain.Quote{
		Instrument: instrument,
		Value:      *price,
		Unit:       p.Unit,
		Provider:   "chart",
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func (p *ChartProvider) RawSeries(ctx context.Context, instrument string, days int) ([]domain.SeriesPoint, error) {
	if days <= 0 {
		days = 1
	}
	body, err := p.get(ctx, instrument, fmt.Sprintf("%dd", days))
	if err != nil {
		return nil, unavailable("chart", err)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, unavailable("chart", fmt.Errorf("empty series for %s", instrument))
	}
	res := body.Chart.Result[0]
	closes := res.Indicators.Quote[0].Close
	if len(res.Timestamp) != len(closes) {
		return nil, unavailable("chart", fmt.Errorf("ragged series for %s", instrument))
	}

	points := make([]domain.SeriesPoint, 0, len(closes))
	for i, c := range closes {
		if c == nil || !validPrice(*c) {
			continue
		}
		points = append(points, domain.SeriesPoint{
			Date:  time.Unix(res.Timestamp[i], 0).UTC(),
			Close: *c,
		})
	}
	if len(points) == 0 {
		return nil, unavailable("chart", fmt.Errorf("no usable points for %s", instrument))
	}
	return points, nil
}

func (p *ChartProvider) get(ctx context.Context, instrument, rng string) (*chartResp, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	u.Path = "/v8/finance/chart/" + instrument
	q := u.Query()
	q.Set("interval", "1d")
	q.Set("range", rng)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, timeout(p.Timeout))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body chartResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func timeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamUnavailable, name, err)
}
