package provider

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

func Test_OpenERAPIProvider_Fetch(t *testing.T) {
	t.Parallel()
	var gotPath string
	p := &OpenERAPIProvider{
		BaseURL: "https://rates.example.test",
		Client: stubClient(func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.Path
			return jsonResponse(200, `{"result":"success","base_code":"USD","rates":{"INR":85.0,"EUR":0.92}}`), nil
		}),
	}

	q, err := p.Fetch(context.Background(), "USD/INR")
	require.NoError(t, err)
	require.Equal(t, 85.0, q.Value)
	require.Equal(t, "USD/INR", q.Instrument)
	require.Equal(t, "/v6/latest/USD", gotPath)
}

func Test_OpenERAPIProvider_Fetch_FailureResult(t *testing.T) {
	t.Parallel()
	p := &OpenERAPIProvider{
		BaseURL: "https://rates.example.test",
		Client: stubClient(func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"result":"error"}`), nil
		}),
	}

	_, err := p.Fetch(context.Background(), "USD/INR")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func Test_OpenERAPIProvider_Fetch_MissingRate(t *testing.T) {
	t.Parallel()
	p := &OpenERAPIProvider{
		BaseURL: "https://rates.example.test",
		Client: stubClient(func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"result":"success","base_code":"USD","rates":{"EUR":0.92}}`), nil
		}),
	}

	_, err := p.Fetch(context.Background(), "USD/INR")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func Test_OpenERAPIProvider_Fetch_InvalidPair(t *testing.T) {
	t.Parallel()
	p := &OpenERAPIProvider{BaseURL: "https://rates.example.test"}

	for _, pair := range []string{"", "USD", "USD-INR", "US/INR", "USD/RUPEE"} {
		_, err := p.Fetch(context.Background(), pair)
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable, pair)
	}
}
