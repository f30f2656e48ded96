package main

import (
	"flag"
	"fmt"
	"time"

	cache "github.com/krisalay/ttl-cache"
	"golang.org/x/sync/errgroup"
)

// ================= BENCHMARK =================

func main() {
	shards := flag.Int("shards", 16, "shard count")
	capacity := flag.Uint64("capacity", 200000, "maximum entries")
	preloadKeys := flag.Int("keys", 100000, "distinct keys")
	goroutines := flag.Int("goroutines", 200, "concurrent workers")
	opsPerG := flag.Int("ops", 5000, "operations per worker")
	writeEvery := flag.Int("write-every", 10, "every n-th operation is a put")
	flag.Parse()

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	opts := cache.Options{
		MaximumSizeEnabled:   true,
		MaximumSize:          *capacity,
		TTLAfterWriteEnabled: true,
		TTLAfterWrite:        time.Minute,
	}

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Shards       :", *shards)
	fmt.Println("Capacity     :", *capacity)
	fmt.Println("Keys         :", *preloadKeys)
	fmt.Println("Goroutines   :", *goroutines)
	fmt.Println("Ops/Goroutine:", *opsPerG)
	fmt.Println("Write every  :", *writeEvery)
	fmt.Println("---------------------------------")

	c := cache.NewTyped[int](opts, cache.WithShards(*shards))
	defer c.Close()

	// ---------------- Preload Cache ----------------
	fmt.Println("Preloading cache...")
	keys := make([]string, *preloadKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		if err := c.Put(keys[i], i); err != nil {
			fmt.Println("preload failed:", err)
			return
		}
	}
	fmt.Println("Preload complete.")

	// ---------------- Load Test ----------------
	fmt.Println("Running concurrency benchmark...")

	// one counter slot per worker, folded after Wait
	hits := make([]int64, *goroutines)
	misses := make([]int64, *goroutines)
	start := time.Now()

	var g errgroup.Group
	for i := 0; i < *goroutines; i++ {
		id := i
		g.Go(func() error {
			for j := 0; j < *opsPerG; j++ {
				key := keys[(id*(*opsPerG)+j)%len(keys)]
				if *writeEvery > 0 && j%*writeEvery == 0 {
					if err := c.Put(key, j); err != nil {
						return err
					}
					continue
				}
				if _, ok := c.Get(key); ok {
					hits[id]++
				} else {
					misses[id]++
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Println("benchmark failed:", err)
		return
	}

	duration := time.Since(start)
	totalOps := *goroutines * *opsPerG

	var totalHits, totalMisses int64
	for i := range hits {
		totalHits += hits[i]
		totalMisses += misses[i]
	}

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Hits / Misses    : %d / %d\n", totalHits, totalMisses)
	fmt.Printf("Entries          : %d\n", c.Len())
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Println("=========================================")
}
