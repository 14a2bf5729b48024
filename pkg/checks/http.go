package checks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/probekit/probekit/pkg/probe"
)

// HTTP returns a probe issuing a GET request against url and mapping the
// response status class to a health status: 2xx and 3xx are Healthy, 4xx
// is Degraded (the endpoint answers but rejects the request), and 5xx is
// Unhealthy. A nil client falls back to http.DefaultClient.
func HTTP(client *http.Client, url string) probe.ProbeFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) (probe.Entry, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return probe.Entry{}, fmt.Errorf("building request for %s: %w", url, err)
		}

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			return probe.Entry{}, fmt.Errorf("request to %s failed: %w", url, err)
		}
		defer resp.Body.Close()

		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		details := map[string]any{
			"url":         url,
			"status_code": resp.StatusCode,
			"latency_ms":  float64(time.Since(start).Microseconds()) / 1000,
		}

		switch {
		case resp.StatusCode < 400:
			return probe.Healthy(fmt.Sprintf("%s returned %d", url, resp.StatusCode)).WithDetails(details), nil
		case resp.StatusCode < 500:
			return probe.Degraded(fmt.Sprintf("%s returned %d", url, resp.StatusCode)).WithDetails(details), nil
		default:
			return probe.Entry{}, fmt.Errorf("%s returned %d", url, resp.StatusCode)
		}
	}
}
