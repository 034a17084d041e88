// Package indexgo provides generic, in-memory indexed collections for Go.
//
// Indexgo is a single-threaded, fully synchronous container library: no
// persistence, no wire format, no internal concurrency. Every search
// across every container shape returns a Found snapshot carrying the
// located value plus enough locator metadata (position, key, or both) to
// act on it without a second lookup.
//
// # Containers
//
// Subpackages, leaves first:
//
//   - seq: ordered sequences with notified removal, a comparator-sorted
//     variant with binary-search insertion, and a duplicate-rejecting
//     sorted variant.
//   - kv: insertion-ordered maps with optional one-way key folding, an
//     explicitly orderable map with O(1) positional lookup, and a map
//     whose keys are always kept in comparator order with O(log n)
//     prefix resolution.
//   - dualkey: a two-dimensional key1 -> key2 -> value store backed by
//     two mirrored indexes that are kept consistent under every mutation.
//   - rank: a weighted multi-criterion sort engine with per-criterion
//     range normalization, inversion and clamping.
//   - compare: comparator primitives, including locale-aware string
//     collation via golang.org/x/text/collate.
//   - intern: a dense-ID string interner plus a Roaring Bitmap-backed ID
//     set for compact membership tests.
//
// # Example
//
//	m := kv.NewSorted[string, int](compare.Natural[string]())
//	m.Set("orange", 3)
//	m.Set("orange pear", 4)
//
//	if f, ok := kv.ByPrefix(m, "orange p"); ok {
//	    fmt.Println(f.Key, f.Value) // orange pear 4
//	}
//
// # Registry
//
// The root package provides Registry, an explicitly constructed owner for
// process-wide lookup caches: created once at startup, injected into
// consumers and reset only on an explicit call.
//
//	reg := indexgo.NewRegistry(indexgo.WithLogLevel(slog.LevelInfo))
//	reg.Register("modules", kv.NewSorted[string, Module](compare.Natural[string]()))
//	...
//	reg.Reset(ctx) // explicit lifecycle, never implicit
//
// # Errors
//
// Lookup, configuration and usage failures surface as ErrNotFound,
// ErrConfiguration and ErrUsage via errors.Is; the underlying subpackage
// error (e.g. *kv.NotFoundError with its diagnostic label) stays
// reachable via errors.As.
package indexgo
