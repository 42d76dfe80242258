// Package upstream is the JSON-over-HTTP client shared by the weather and
// country resolvers.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/neexbeast/tripwise/internal/metrics"
)

// StatusError is returned when the upstream answers with a non-200 status.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// Client performs GET requests against one upstream service.
type Client struct {
	service string
	http    *http.Client
	metrics *metrics.Metrics
}

// New returns a Client with the given per-call timeout. The service name labels
// metrics, spans and error messages.
func New(service string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		service: service,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: m,
	}
}

// GetJSON performs a GET on base with the given query and decodes the JSON
// body into dst. Query values never appear in returned errors since they may
// carry API keys.
func (c *Client) GetJSON(ctx context.Context, base string, query url.Values, dst any) (err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(c.service, start, err) }()

	rawURL := base
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", c.service, stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Service: c.service, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s response: %w", c.service, err)
	}

	return nil
}

// stripURL drops the request URL from *url.Error so keys in the query string
// do not end up in logs.
func stripURL(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
