package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTimeout bounds a whole probe, connect to last body byte.
const DefaultTimeout = 10 * time.Second

// maxDrain caps how much of a response body is read so the connection can be
// reused without downloading arbitrarily large pages.
const maxDrain = 64 << 10

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Check issues exactly one GET. It never retries.
func (c *HTTPChecker) Check(ctx context.Context, target string) Outcome {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Failed(err, time.Since(start))
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return Failed(err, time.Since(start))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	return Responded(resp.StatusCode, time.Since(start))
}

var _ Checker = (*HTTPChecker)(nil)
