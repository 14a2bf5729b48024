package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/probekit/probekit/pkg/cache"
	"github.com/probekit/probekit/pkg/config"
	"github.com/probekit/probekit/pkg/errors"
)

// TimeoutMessage is the fixed description of entries produced when a probe
// exceeds its registration timeout.
const TimeoutMessage = "probe timed out"

// OverrideResolver resolves the per-registration option overrides for a
// probe name. It is called on every cache-write decision, so a resolver
// backed by hot-reloadable configuration takes effect between calls.
type OverrideResolver func(name string) config.ProbeOverride

// runner executes a single registration: cache lookup, probe invocation
// with timeout handling, and the conditional cache write.
type runner struct {
	cache   cache.Cache
	cfg     config.ProbesConfig
	resolve OverrideResolver
	obs     Observer
}

// run produces exactly one entry for one registration, or an error when the
// caller's own context was cancelled. Probe failures and timeouts never
// surface as errors; they are recovered into Unhealthy entries.
func (r *runner) run(ctx context.Context, reg Registration) (Entry, error) {
	key := cache.Key(r.cfg.KeyPrefix, strings.ToLower(reg.Name))

	if data, ok := r.cache.Get(ctx, key); ok {
		if entry, err := decodeEntry(data); err == nil {
			r.obs.CacheHit(ctx, reg.Name)
			// Served verbatim: timing is not re-stamped.
			return entry, nil
		}
		// A corrupt entry falls through to re-execution.
	}

	cacheable := reg.HasTag(r.cfg.CacheTag)

	runCtx := ctx
	if reg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, reg.Timeout)
		defer cancel()
	}

	r.obs.ProbeStarted(ctx, reg.Name)
	start := time.Now()

	type outcome struct {
		entry Entry
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		entry, err := checkSafely(runCtx, reg.Probe)
		done <- outcome{entry: entry, err: err}
	}()

	var entry Entry
	var failed bool

	select {
	case out := <-done:
		if ctx.Err() != nil {
			// The caller's own signal terminated the run; abandon the
			// whole operation instead of reporting a partial result.
			return Entry{}, ctx.Err()
		}
		switch {
		case out.err == nil:
			entry = out.entry
		case runCtx.Err() == context.DeadlineExceeded:
			entry = timeoutEntry()
			failed = true
		default:
			entry = Unhealthy(out.err.Error(), out.err)
			failed = true
		}
	case <-runCtx.Done():
		if ctx.Err() != nil {
			return Entry{}, ctx.Err()
		}
		// The probe ignored its deadline; abandon it and report the timeout.
		entry = timeoutEntry()
		failed = true
	}

	entry.Duration = time.Since(start)

	if cacheable {
		if ttl, ok := r.resolveTTL(reg.Name, failed); ok {
			expiresAt := time.Now().Add(ttl)
			entry = annotate(entry, ttl, expiresAt)

			data, err := encodeEntry(entry)
			if err == nil {
				err = r.cache.Set(ctx, key, data, expiresAt)
			}
			r.obs.CacheWrite(ctx, reg.Name, expiresAt, err)
		}
	}

	r.obs.ProbeCompleted(ctx, reg.Name, entry)
	return entry, nil
}

// resolveTTL returns the cache duration for a probe outcome and whether the
// outcome should be cached at all. Results always cache (per-registration
// override, else the process default); failures cache only when failure
// caching is enabled (per-registration failure override, else the process
// failure default, else the process default).
func (r *runner) resolveTTL(name string, failed bool) (time.Duration, bool) {
	override := r.resolve(name)

	if !failed {
		if override.CacheTTL != 0 {
			return override.CacheTTL, true
		}
		return r.cfg.DefaultTTL, true
	}

	if !r.cfg.CacheFailures {
		return 0, false
	}
	if override.FailureTTL != 0 {
		return override.FailureTTL, true
	}
	if r.cfg.FailureTTL != 0 {
		return r.cfg.FailureTTL, true
	}
	return r.cfg.DefaultTTL, true
}

// checkSafely invokes the probe, recovering a panic into a probe failure.
func checkSafely(ctx context.Context, p Probe) (entry Entry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			entry = Entry{}
			err = fmt.Errorf("probe panicked: %v", rec)
		}
	}()
	return p.Check(ctx)
}

// timeoutEntry builds the entry for a probe that exceeded its timeout. The
// cause is a TimeoutError so consumers can distinguish it from a generic
// failure.
func timeoutEntry() Entry {
	return Unhealthy(TimeoutMessage, errors.NewTimeout(TimeoutMessage, context.DeadlineExceeded))
}

// annotate returns a copy of the entry whose details carry the cache-window
// description. The original details map is never mutated.
func annotate(e Entry, ttl time.Duration, expiresAt time.Time) Entry {
	details := make(map[string]any, len(e.Details)+2)
	for k, v := range e.Details {
		details[k] = v
	}
	details[DetailCachedUntil] = expiresAt.UTC().Format(time.RFC3339)
	details[DetailCacheTTL] = ttl.String()
	return e.WithDetails(details)
}
