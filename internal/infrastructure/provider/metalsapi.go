package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/httpx"
)

// MetalsAPIProvider wraps a metals-api-style aggregator. Rates come back
// inverted (troy ounces of metal per one unit of base currency), so the
// local per-ounce price is the reciprocal.
type MetalsAPIProvider struct {
	BaseURL  string
	APIKey   string
	Symbol   string
	Currency string
	Client   *httpx.Client
	Timeout  time.Duration
}

var _ application.GramPriceProvider = (*MetalsAPIProvider)(nil)

type metalsapiResp struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

func (p *MetalsAPIProvider) GramPrice(ctx context.Context) (domain.Quote, error) {
	if p.APIKey == "" {
		return domain.Quote{}, unavailable("metalsapi", fmt.Errorf("missing api key"))
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, unavailable("metalsapi", err)
	}
	u.Path = "/v1/latest"
	q := u.Query()
	q.Set("access_key", p.APIKey)
	q.Set("base", p.Currency)
	q.Set("symbols", p.Symbol)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, timeout(p.Timeout))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, unavailable("metalsapi", err)
	}
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body metalsapiResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return domain.Quote{}, unavailable("metalsapi", err)
	}
	if !body.Success {
		if body.Error != nil {
			return domain.Quote{}, unavailable("metalsapi", fmt.Errorf("%d %s", body.Error.Code, body.Error.Info))
		}
		return domain.Quote{}, unavailable("metalsapi", fmt.Errorf("unsuccessful response"))
	}
	rate, ok := body.Rates[p.Symbol]
	if !ok || !validPrice(rate) {
		return domain.Quote{}, unavailable("metalsapi", fmt.Errorf("missing rate for %s", p.Symbol))
	}

	ozt, _ := strconv.ParseFloat(domain.GramsPerTroyOunce, 64)
	gram := 1 / rate / ozt
	return domain.Quote{
		Instrument: p.Symbol + "/" + p.Currency,
		Value:      gram,
		Unit:       p.Currency + "/g",
		Provider:   "metalsapi",
		FetchedAt:  time.Now().UTC(),
	}, nil
}
