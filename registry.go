package indexgo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/indexgo/intern"
	"github.com/hupe1980/indexgo/kv"
)

// Cache is implemented by any lookup cache a Registry can own. All
// containers in this module (kv.Map and friends, seq.Sequence variants,
// dualkey.Map) satisfy it.
type Cache interface {
	Len() int
	Clear()
}

// Registry is an explicitly constructed, explicitly owned home for
// process-wide shared lookup caches: created once at startup, injected
// into consumers, and reset only on an explicit Reset call. It replaces
// implicit global cache state with a defined lifecycle.
//
// Unlike the containers themselves, a Registry is safe for concurrent
// use: registration and lookup are guarded internally. The owned caches
// keep their own single-threaded contract.
type Registry struct {
	mu sync.RWMutex

	caches *kv.Map[string, Cache]
	names  *intern.Interner
	live   *intern.IDSet

	logger  *Logger
	metrics MetricsCollector
}

// NewRegistry creates an empty Registry.
func NewRegistry(optFns ...Option) *Registry {
	o := applyOptions(optFns)

	return &Registry{
		caches:  kv.New[string, Cache](),
		names:   intern.NewInterner(),
		live:    intern.NewIDSet(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Register adds a named cache. Registering a name twice is a
// configuration error; caches are created once and live for the lifetime
// of their owner.
func (r *Registry) Register(name string, c Cache) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.names.Intern(name)
	if r.live.Contains(id) {
		err := fmt.Errorf("%w: cache %q already registered", ErrConfiguration, name)
		r.logger.LogRegister(name, err)

		return err
	}

	r.caches.Set(name, c)
	r.live.Add(id)

	r.logger.LogRegister(name, nil)
	r.metrics.RecordRegister()

	return nil
}

// Lookup returns the cache registered under name. ok=false if absent.
func (r *Registry) Lookup(name string) (Cache, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.caches.ByKey(name)
	r.metrics.RecordLookup(ok)

	if !ok {
		return nil, false
	}

	return f.Value, true
}

// Require returns the cache registered under name, or an error matching
// ErrNotFound via errors.Is.
func (r *Registry) Require(name string) (Cache, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, err := r.caches.ByKeyRequired(name, fmt.Sprintf("cache %q", name))
	r.metrics.RecordLookup(err == nil)

	if err != nil {
		return nil, translateError(err)
	}

	return f.Value, nil
}

// Has reports whether a cache is registered under name. Resolved through
// the interned ID set without touching the cache map.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names.Lookup(name)

	return ok && r.live.Contains(id)
}

// Names returns the registered cache names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.caches.Keys()
}

// Len returns the number of registered caches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.caches.Len()
}

// Size returns the total entry count across all registered caches.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, c := range r.caches.All() {
		total += c.Len()
	}

	return total
}

// Reset clears every registered cache. The caches stay registered; only
// their entries are dropped. Distinct caches are cleared in parallel.
// Reset is the single, explicit lifecycle point for discarding shared
// lookup state.
func (r *Registry) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	for _, c := range r.caches.All() {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			c.Clear()

			return nil
		})
	}

	err := g.Wait()

	r.logger.LogReset(ctx, r.caches.Len(), err)
	r.metrics.RecordReset(time.Since(start), err)

	return err
}
