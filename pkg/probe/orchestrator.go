package probe

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/probekit/probekit/pkg/cache"
	"github.com/probekit/probekit/pkg/config"
)

// Filter selects a subset of the catalog for one orchestration call.
// A nil Filter selects all registrations.
type Filter func(Registration) bool

// ByTag returns a filter selecting registrations carrying the given tag.
func ByTag(tag string) Filter {
	return func(reg Registration) bool {
		return reg.HasTag(tag)
	}
}

// Orchestrator fans probe execution out across a catalog and aggregates the
// results into a report. It holds no mutable state across calls beyond the
// cache, so it is safe for repeated and concurrent use.
type Orchestrator struct {
	catalog *Catalog
	runner  *runner
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithObserver installs an observer receiving probe lifecycle events.
// Observers are side-channel notifications only; they never affect control
// flow.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		o.runner.obs = obs
	}
}

// WithOverrideResolver replaces the source of per-registration option
// overrides. The default resolver reads the static Overrides map of the
// probes configuration; supply a custom resolver to back overrides with
// hot-reloadable configuration.
func WithOverrideResolver(resolve OverrideResolver) Option {
	return func(o *Orchestrator) {
		o.runner.resolve = resolve
	}
}

// New creates an orchestrator over a validated catalog, a result cache, and
// the process-wide probe options.
func New(catalog *Catalog, c cache.Cache, cfg config.ProbesConfig, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: catalog,
		runner: &runner{
			cache:   c,
			cfg:     cfg,
			resolve: cfg.Override,
			obs:     NopObserver{},
		},
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the registrations selected by filter (nil means all)
// concurrently and returns their aggregated report.
//
// Probe failures and timeouts are recovered into Unhealthy entries and
// never fail the call. The only error Run returns is the caller's own
// cancellation, in which case no report is produced. A cancelled call
// must be treated as "no report", not as a degraded one.
func (o *Orchestrator) Run(ctx context.Context, filter Filter) (*Report, error) {
	var selected []Registration
	for _, reg := range o.catalog.Registrations() {
		if filter == nil || filter(reg) {
			selected = append(selected, reg)
		}
	}

	start := time.Now()

	type outcome struct {
		name  string
		entry Entry
		err   error
	}

	results := make(chan outcome, len(selected))
	var wg sync.WaitGroup

	for _, reg := range selected {
		wg.Add(1)
		go func(reg Registration) {
			defer wg.Done()
			entry, err := o.runner.run(ctx, reg)
			results <- outcome{name: reg.Name, entry: entry, err: err}
		}(reg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make(map[string]Entry, len(selected))
	var runErr error

	for out := range results {
		if out.err != nil {
			if runErr == nil {
				runErr = out.err
			}
			continue
		}
		entries[out.name] = out.entry
	}

	if runErr != nil {
		return nil, runErr
	}

	return &Report{
		ID:       uuid.NewString(),
		Status:   AggregateStatus(entries),
		Entries:  entries,
		Duration: time.Since(start),
	}, nil
}
