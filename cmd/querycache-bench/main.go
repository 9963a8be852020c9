// Command querycache-bench runs a synthetic batch of queries against a
// Cache and prints a summary of its metrics, adapted from the teacher's
// getorload and otel-prometheus examples.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	querycache "github.com/replicated-compute/querycache"
	"github.com/replicated-compute/querycache/promcollector"
)

func main() {
	requests := flag.Int("requests", 50_000, "number of synthetic lookups to issue")
	keys := flag.Int("keys", 500, "number of distinct keys in the synthetic workload")
	capacityBytes := flag.Uint64("capacity-bytes", 8*1024*1024, "Store byte capacity")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :2112) until interrupted")
	flag.Parse()

	collector := promcollector.New()

	cache := querycache.New(querycache.Config{
		CapacityBytes:    *capacityBytes,
		Enabled:          true,
		MetricsCollector: collector,
	})
	defer cache.Close()

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", collector.Handler())
			log.Printf("serving metrics on %s/metrics", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	runWorkload(cache, *requests, *keys)

	m := cache.Metrics()
	fmt.Printf("requests:     %d\n", *requests)
	fmt.Printf("hits:         %d\n", m.Hits())
	fmt.Printf("misses:       %d\n", m.Misses())
	fmt.Printf("hit ratio:    %.2f%%\n", m.HitRatio())
	fmt.Printf("evicted:      %d\n", m.EvictedEntries())
	fmt.Printf("invalidated:  %d (time=%d version=%d balance=%d)\n",
		m.InvalidatedEntries(), m.InvalidatedEntriesByTime(),
		m.InvalidatedEntriesByCanisterVersion(), m.InvalidatedEntriesByCanisterBalance())
	fmt.Printf("count_bytes:  %d\n", m.CountBytes())
}

// runWorkload issues n lookups across a fixed pool of keys, inserting on
// every miss and occasionally perturbing the Environment to exercise
// invalidation as well as eviction.
func runWorkload(cache *querycache.Cache, n, keyCount int) {
	env := querycache.Environment{BatchTime: time.Now(), CanisterVersion: 1, CanisterBalance: 1_000_000}

	for i := 0; i < n; i++ {
		idx := rand.Intn(keyCount)
		key := querycache.NewKey("uqqxf-5h777-77774-qaaaa-cai", "rrkah-fqaaa-aaaaa-aaaaq-cai",
			"greet", []byte(fmt.Sprintf("payload-%d", idx)))

		if i%10_000 == 9_999 {
			env.CanisterVersion++
		}

		if _, ok := cache.Lookup(key, env); !ok {
			cache.Insert(key, env, querycache.Reply([]byte(fmt.Sprintf("reply-%d", idx))))
		}
	}
}
