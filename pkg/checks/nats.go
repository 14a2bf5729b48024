package checks

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/probekit/probekit/pkg/probe"
)

// NATS returns a probe verifying connectivity to a NATS server.
// A connection in RECONNECTING state reports Degraded: the client is
// still usable but the server is currently unreachable.
func NATS(nc *nats.Conn) probe.ProbeFunc {
	return func(ctx context.Context) (probe.Entry, error) {
		if nc == nil {
			return probe.Entry{}, fmt.Errorf("nats connection is nil")
		}

		status := nc.Status()
		switch status {
		case nats.CONNECTED:
			// Verify server responsiveness with a round trip.
			rtt, err := nc.RTT()
			if err != nil {
				return probe.Entry{}, fmt.Errorf("nats rtt check failed: %w", err)
			}
			return probe.Healthy("nats connected").WithDetails(map[string]any{
				"rtt_ms":    float64(rtt.Microseconds()) / 1000,
				"connected": nc.ConnectedUrl(),
			}), nil
		case nats.RECONNECTING:
			return probe.Degraded("nats reconnecting"), nil
		default:
			return probe.Entry{}, fmt.Errorf("nats connection not connected: status=%v", status)
		}
	}
}
