// Package querycache provides an in-memory, byte-capped memoization layer
// for deterministic query execution results.
//
// # Overview
//
// A query against a replicated compute platform's execution layer is a
// pure function of two inputs: a Key identifying the call (source,
// receiver, method name, and argument payload) and an Environment
// capturing the slice of the target program's state the call can observe
// (batch time, version, balance). Given the same (Key, Environment) pair,
// re-executing the query always produces the same Result. This package
// memoizes that mapping so repeated queries against an unchanged
// Environment can skip re-execution entirely.
//
// # Design
//
//   - Single mutex: Store guards its map, its LRU list, and its byte
//     accounting with one sync.Mutex; no operation suspends while holding
//     it (§5).
//   - Byte-capped, not count-capped: capacity is a total byte budget
//     across all cached entries, not an entry count.
//   - Environment-driven invalidation, not TTL: a Lookup whose current
//     Environment differs from the one captured at Insert time treats the
//     entry as stale, removes it, and reports a miss — this is tracked
//     separately from capacity-driven eviction.
//   - No process ever surfaces an error from Lookup or Insert; the only
//     error-shaped condition is an internal invariant violation, confined
//     to debug builds (§7).
//
// # Quick Start
//
//	cache := querycache.New(querycache.DefaultConfig())
//
//	key := querycache.NewKey("aaaaa-aa", "rrkah-fqaaa-aaaaa-aaaaq-cai", "greet", []byte("world"))
//	env := querycache.Environment{BatchTime: time.Now(), CanisterVersion: 1, CanisterBalance: 1_000_000}
//
//	if value, ok := cache.Lookup(key, env); ok {
//	    fmt.Println(string(value.Result().ReplyBytes()))
//	} else {
//	    result := querycache.Reply([]byte("hello, world"))
//	    cache.Insert(key, env, result)
//	}
//
// # Observability
//
// Cache.Metrics returns the in-process counters and histograms described
// in the metrics.go component. Plugging in the otel or promcollector
// subpackage as Config.MetricsCollector additionally exports the same
// events to an external backend without changing call sites.
//
// # Hot reload
//
// WatchConfig attaches an Argus-backed file watcher to a live Cache,
// applying query_caching and query_cache_capacity changes as they
// are observed on disk.
package querycache
