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

// GoldAPIProvider wraps a goldapi.io-style aggregator that quotes the metal
// directly in the local currency, per troy ounce with per-gram convenience
// fields.
type GoldAPIProvider struct {
	BaseURL  string
	APIKey   string
	Metal    string
	Currency string
	Client   *httpx.Client
	Timeout  time.Duration
}

var _ application.GramPriceProvider = (*GoldAPIProvider)(nil)

type goldapiResp struct {
	Price     float64 `json:"price"`
	PriceGram float64 `json:"price_gram_24k"`
	Currency  string  `json:"currency"`
	Metal     string  `json:"metal"`
}

func (p *GoldAPIProvider) GramPrice(ctx context.Context) (domain.Quote, error) {
	if p.APIKey == "" {
		return domain.Quote{}, unavailable("goldapi", fmt.Errorf("missing api key"))
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, unavailable("goldapi", err)
	}
	u.Path = "/api/" + p.Metal + "/" + p.Currency

	ctx, cancel := context.WithTimeout(ctx, timeout(p.Timeout))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, unavailable("goldapi", err)
	}
	req.Header.Set("x-access-token", p.APIKey)

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body goldapiResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return domain.Quote{}, unavailable("goldapi", err)
	}

	gram := body.PriceGram
	if !validPrice(gram) {
		if !validPrice(body.Price) {
			return domain.Quote{}, unavailable("goldapi", fmt.Errorf("no usable price for %s/%s", p.Metal, p.Currency))
		}
		ozt, _ := strconv.ParseFloat(domain.GramsPerTroyOunce, 64)
		gram = body.Price / ozt
	}
	return domain.Quote{
		Instrument: p.Metal + "/" + p.Currency,
		Value:      gram,
		Unit:       p.Currency + "/g",
		Provider:   "goldapi",
		FetchedAt:  time.Now().UTC(),
	}, nil
}
