package provider

import (
	"io"
	"net/http"
	"strings"

	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/httpx"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func stubClient(fn roundTripFunc) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{Transport: fn}}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
