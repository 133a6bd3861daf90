package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/httpx"
)

// OpenERAPIProvider fetches exchange rates from an open.er-api-style
// endpoint: a JSON map of currency codes to rates against a base currency.
// Instruments are currency pairs like "USD/INR".
type OpenERAPIProvider struct {
	BaseURL string
	Client  *httpx.Client
	Timeout time.Duration
}

var _ application.QuoteProvider = (*OpenERAPIProvider)(nil)

type erapiResp struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (p *OpenERAPIProvider) Fetch(ctx context.Context, instrument string) (domain.Quote, error) {
	base, quote, ok := splitPair(instrument)
	if !ok {
		return domain.Quote{}, unavailable("erapi", fmt.Errorf("invalid pair %q", instrument))
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, unavailable("erapi", err)
	}
	u.Path = "/v6/latest/" + base

	ctx, cancel := context.WithTimeout(ctx, timeout(p.Timeout))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, unavailable("erapi", err)
	}
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body erapiResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return domain.Quote{}, unavailable("erapi", err)
	}
	if body.Result != "success" {
		return domain.Quote{}, unavailable("erapi", fmt.Errorf("result %q", body.Result))
	}
	rate, ok := body.Rates[quote]
	if !ok || !validPrice(rate) {
		return domain.Quote{}, unavailable("erapi", fmt.Errorf("missing rate for %s", quote))
	}
	return domain.Quote{
		Instrument: instrument,
		Value:      rate,
		Unit:       quote + "/" + base,
		Provider:   "erapi",
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func splitPair(pair string) (base, quote string, ok bool) {
	parts := strings.Split(pair, "/")
	if len(parts) != 2 || len(parts[0]) != 3 || len(parts[1]) != 3 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
