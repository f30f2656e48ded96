package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	cache "github.com/krisalay/ttl-cache"
	"github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/eviction"
)

// ================= METRICS =================

type Metrics struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	expired   atomic.Int64
}

func (m *Metrics) Hit()      { m.hits.Add(1) }
func (m *Metrics) Miss()     { m.misses.Add(1) }
func (m *Metrics) Eviction() { m.evictions.Add(1) }
func (m *Metrics) Expire()   { m.expired.Add(1) }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", m.hits.Load())
	fmt.Printf("MISSES    : %d\n", m.misses.Load())
	fmt.Printf("EVICTIONS : %d\n", m.evictions.Load())
	fmt.Printf("EXPIRED   : %d\n", m.expired.Load())
}

// ================= SOURCE OF TRUTH =================

// lookup is the lookup-or-compute pattern: trust a hit, compute and cache on a miss.
func lookup(c api.Cache[string], key string) string {
	if v, ok := c.Get(key); ok {
		fmt.Printf("CACHE  → HIT  %s = %s\n", key, v)
		return v
	}
	v := "computed-" + key
	fmt.Printf("SOURCE → MISS %s, computed %s\n", key, v)
	if err := c.Put(key, v); err != nil {
		// Not fatal: the value is just not cached.
		fmt.Printf("CACHE  → PUT %s failed: %v\n", key, err)
	}
	return v
}

// ================= MAIN =================

func main() {
	configPath := flag.String("config", "", "cache options file (.json, .yaml or .yml)")
	verbose := flag.Bool("v", false, "debug logging")
	policy := flag.String("eviction", string(eviction.LRU), "size eviction policy: LRU, LFU or FIFO")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := cache.DefaultOptions()
	if *configPath != "" {
		loaded, err := cache.LoadOptions(*configPath)
		if err != nil {
			logger.Error("cannot load options", "error", err)
			os.Exit(1)
		}
		opts = loaded
	}

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("OPTIONS         :", opts)
	evictionPolicy := eviction.PolicyType(strings.ToUpper(*policy))
	if _, err := eviction.NewEvictionPolicy(evictionPolicy); err != nil {
		logger.Error("invalid -eviction", "error", err)
		os.Exit(1)
	}
	fmt.Println("EVICTION POLICY :", evictionPolicy)

	metrics := &Metrics{}
	common := []cache.Option{
		cache.WithLogger(logger),
		cache.WithMetrics(metrics),
		cache.WithEvictionPolicy(evictionPolicy),
	}

	// ====================================================
	fmt.Println("\n==================== 1) MISS THEN HIT ====================")
	primary := cache.NewTyped[string](opts, common...)
	defer primary.Close()
	lookup(primary, "a")
	lookup(primary, "a")

	// ====================================================
	fmt.Println("\n==================== 2) TTL AFTER WRITE ====================")
	writeTTL := cache.NewTyped[string](cache.Options{
		TTLAfterWriteEnabled: true,
		TTLAfterWrite:        200 * time.Millisecond,
	}, common...)
	defer writeTTL.Close()

	lookup(writeTTL, "x")
	time.Sleep(250 * time.Millisecond)
	fmt.Println("CACHE  → 250ms later")
	lookup(writeTTL, "x")

	// ====================================================
	fmt.Println("\n==================== 3) TTL AFTER ACCESS ====================")
	accessTTL := cache.NewTyped[string](cache.Options{
		TTLAfterAccessEnabled: true,
		TTLAfterAccess:        200 * time.Millisecond,
	}, common...)
	defer accessTTL.Close()

	lookup(accessTTL, "y")
	for i := 0; i < 3; i++ {
		time.Sleep(120 * time.Millisecond)
		lookup(accessTTL, "y") // each read slides the deadline
	}
	time.Sleep(250 * time.Millisecond)
	fmt.Println("CACHE  → idle for 250ms")
	lookup(accessTTL, "y")

	// ====================================================
	fmt.Println("\n==================== 4) SIZE EVICTION ====================")
	bounded := cache.NewTyped[int](cache.Options{
		MaximumSizeEnabled: true,
		MaximumSize:        20,
	}, common...)
	defer bounded.Close()

	for i := 0; i < 50; i++ {
		_ = bounded.Put(fmt.Sprintf("k%d", i), i)
	}
	fmt.Printf("CACHE  → 50 puts, %d entries kept (bound 20)\n", bounded.Len())

	// ====================================================
	fmt.Println("\n==================== 5) NIL REJECTION ====================")
	pointers := cache.NewTyped[*string](cache.Options{}, cache.WithLogger(logger))
	defer pointers.Close()
	if err := pointers.Put("nil", nil); err != nil {
		fmt.Println("CACHE  → PUT nil rejected:", err)
	}

	// ====================================================
	metrics.Print()

	fmt.Println("\n==================== SHUTDOWN ====================")
}
