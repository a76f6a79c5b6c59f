// Package upstream implements the REST clients for the two external
// collaborators: the product service and the identity service. Both speak
// plain JSON; every request is bounded by a fixed client-side timeout and a
// single attempt is made (no retries).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopnexus/storefront/internal/api/metrics"
	"github.com/shopnexus/storefront/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// client carries what both service clients share: a base URL, a bounded
// http.Client, and the service label used in errors and metrics.
type client struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

func newClient(service, baseURL string, timeout time.Duration) client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return client{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// newRequest builds a JSON request against the service base URL. The body,
// when present, is JSON-encoded; both content negotiation headers are set on
// every request.
func (c client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", c.service, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request, records metrics, and decodes a 2xx body into out
// (skipped when out is nil). Non-2xx replies become *domain.UpstreamError
// carrying the server's {"error": "..."} message when one is present.
func (c client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.service).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.service, "error").Inc()
		return fmt.Errorf("%s: %w", c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.service, "rejected").Inc()
		return c.rejection(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues(c.service, "error").Inc()
			return fmt.Errorf("%s: decode response: %w", c.service, err)
		}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(c.service, "success").Inc()
	return nil
}

// rejection turns a non-2xx reply into an UpstreamError. Error bodies are
// small JSON envelopes; reads are capped at 4 KiB.
func (c client) rejection(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var envelope struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			message = envelope.Error
		}
	}

	return &domain.UpstreamError{
		Service: c.service,
		Status:  resp.StatusCode,
		Message: message,
	}
}
