package probe

import (
	"context"
	"time"

	"github.com/probekit/probekit/pkg/logging"
)

// Observer receives side-channel notifications about probe lifecycle
// events. Implementations must be safe for concurrent use and must not
// block; the engine never depends on an observer for control flow.
type Observer interface {
	// ProbeStarted is invoked just before a probe body executes.
	// It is not invoked for results served from the cache.
	ProbeStarted(ctx context.Context, name string)

	// ProbeCompleted is invoked with the entry produced by a probe
	// execution, after any cache write.
	ProbeCompleted(ctx context.Context, name string, entry Entry)

	// CacheHit is invoked when a probe's result is served from the cache.
	CacheHit(ctx context.Context, name string)

	// CacheWrite is invoked after a cache write attempt. err is non-nil
	// when the write failed; a failed write never fails the probe run.
	CacheWrite(ctx context.Context, name string, expiresAt time.Time, err error)
}

// NopObserver is an Observer that ignores all events.
type NopObserver struct{}

func (NopObserver) ProbeStarted(context.Context, string)                 {}
func (NopObserver) ProbeCompleted(context.Context, string, Entry)        {}
func (NopObserver) CacheHit(context.Context, string)                     {}
func (NopObserver) CacheWrite(context.Context, string, time.Time, error) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) ProbeStarted(ctx context.Context, name string) {
	for _, obs := range m {
		obs.ProbeStarted(ctx, name)
	}
}

func (m MultiObserver) ProbeCompleted(ctx context.Context, name string, entry Entry) {
	for _, obs := range m {
		obs.ProbeCompleted(ctx, name, entry)
	}
}

func (m MultiObserver) CacheHit(ctx context.Context, name string) {
	for _, obs := range m {
		obs.CacheHit(ctx, name)
	}
}

func (m MultiObserver) CacheWrite(ctx context.Context, name string, expiresAt time.Time, err error) {
	for _, obs := range m {
		obs.CacheWrite(ctx, name, expiresAt, err)
	}
}

// LogObserver logs probe lifecycle events through a structured logger.
type LogObserver struct {
	log *logging.Logger
}

// NewLogObserver creates an observer that logs lifecycle events.
func NewLogObserver(logger *logging.Logger) *LogObserver {
	return &LogObserver{log: logger.WithComponent("probe")}
}

func (o *LogObserver) ProbeStarted(ctx context.Context, name string) {
	o.log.Debug().Str(logging.Probe, name).Msg("probe started")
}

func (o *LogObserver) ProbeCompleted(ctx context.Context, name string, entry Entry) {
	evt := o.log.Info()
	if entry.Status == StatusUnhealthy {
		evt = o.log.Warn()
	}
	if entry.Err != nil {
		evt = evt.Err(entry.Err)
	}
	evt.Str(logging.Probe, name).
		Str(logging.Status, entry.Status.String()).
		Float64(logging.Duration, float64(entry.Duration.Milliseconds())).
		Msg("probe completed")
}

func (o *LogObserver) CacheHit(ctx context.Context, name string) {
	o.log.Debug().Str(logging.Probe, name).Msg("probe result served from cache")
}

func (o *LogObserver) CacheWrite(ctx context.Context, name string, expiresAt time.Time, err error) {
	if err != nil {
		o.log.Warn().Err(err).Str(logging.Probe, name).Msg("probe result cache write failed")
		return
	}
	o.log.Debug().
		Str(logging.Probe, name).
		Str(logging.ExpiresAt, expiresAt.UTC().Format(time.RFC3339)).
		Msg("probe result cached")
}

// Ensure implementations satisfy Observer
var (
	_ Observer = NopObserver{}
	_ Observer = MultiObserver{}
	_ Observer = (*LogObserver)(nil)
)
