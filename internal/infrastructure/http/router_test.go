package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/memstore"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/provider"
)

// newTestHandler wires a full service on fakes: live compute from fixed spot
// and fx feeds, an in-memory ledger, and no cache.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	params := application.PricingParams{
		Metal:     "XAG",
		Currency:  "INR",
		Purity:    0.999,
		Formula:   domain.NewMarkupFormula(0.10, 0.03, 0.10, "v1"),
		SpreadPct: 0.02,
		BandPct:   0.015,
	}
	spot := provider.NewFake(31.0)
	fx := provider.NewFake(85.0)
	resolver := application.NewFallbackResolver(params, 95.00, []application.Strategy{
		&application.LiveComputeStrategy{
			Spot:           spot,
			FX:             fx,
			SpotInstrument: "SI=F",
			FXInstrument:   "USD/INR",
			Params:         params,
		},
		&application.StaticStrategy{SeedGram: 95.00, Params: params},
	})
	series := &application.LocalizedSeries{
		Chart:           spot,
		FX:              fx,
		ChartInstrument: "SI=F",
		FXInstrument:    "USD/INR",
		Params:          params,
	}
	variants := []domain.VariantOffset{
		{Name: "delhi"},
		{Name: "kolkata", OffsetPerGram: 0.50},
	}
	svc := application.NewPriceService(resolver, memstore.NewHistoryRepo(), series, application.NoopCache{}, params, variants)
	return NewRouter(NewServer(svc, nil))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func Test_GetPrice(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/v1/price")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	var body priceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "XAG", body.Metal)
	require.Equal(t, "INR", body.Currency)
	require.Equal(t, string(domain.ProvenanceLive), body.Source)
	require.Greater(t, body.Gram, 0.0)
	require.InDelta(t, body.Gram*10, body.TenGram, 0.1)
	require.Less(t, body.BuyGram, body.Gram)
	require.Greater(t, body.High, body.Low)
}

func Test_GetPriceHistory_Defaults(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/v1/price/history")
	require.Equal(t, http.StatusOK, rr.Code)

	var body historyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, 30, body.Days)
	require.NotEmpty(t, body.Entries)
	for _, e := range body.Entries {
		require.Greater(t, e.Gram, 0.0)
	}
}

func Test_GetPriceHistory_DaysParam(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/v1/price/history?days=7")
	require.Equal(t, http.StatusOK, rr.Code)

	var body historyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, 7, body.Days)
	require.LessOrEqual(t, len(body.Entries), 7)
}

func Test_GetPriceHistory_BadDays(t *testing.T) {
	h := newTestHandler(t)

	for _, q := range []string{"days=0", "days=-1", "days=366", "days=abc"} {
		rr := get(t, h, "/v1/price/history?"+q)
		require.Equal(t, http.StatusBadRequest, rr.Code, q)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotEmpty(t, body["error"])
	}
}

func Test_GetPriceVariants(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/v1/price/variants")
	require.Equal(t, http.StatusOK, rr.Code)

	var body variantsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, string(domain.ProvenanceLive), body.Source)
	require.Len(t, body.Variants, 2)
	require.Equal(t, "delhi", body.Variants[0].Name)
	require.InDelta(t, body.Variants[0].Gram+0.50, body.Variants[1].Gram, 1e-9)
}

func Test_Healthz(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())
}

func Test_Readyz_PingFailure(t *testing.T) {
	params := application.PricingParams{
		Metal:    "XAG",
		Currency: "INR",
		Purity:   0.999,
		Formula:  domain.NewMarkupFormula(0.10, 0.03, 0.10, "v1"),
	}
	resolver := application.NewFallbackResolver(params, 95.00, nil)
	svc := application.NewPriceService(resolver, memstore.NewHistoryRepo(), nil, application.NoopCache{}, params, nil)
	h := NewRouter(NewServer(svc, func(context.Context) error {
		return domain.ErrStorageUnavailable
	}))

	rr := get(t, h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func Test_UnknownRoute(t *testing.T) {
	h := newTestHandler(t)

	rr := get(t, h, "/v1/unknown")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
