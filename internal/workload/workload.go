// Package workload drives a HashMap with generated keys and loads key value files.
package workload

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
	"github.com/amgfrthsp/HSE.HashMap/internal/config"
)

// Hasher returns the string hash function named by the config.
func Hasher(name string) (func(key string) uint64, error) {
	switch name {
	case config.HasherMaphash:
		return hashmap.DefaultHasher[string](), nil
	case config.HasherXXHash:
		return hashmap.XXHashString, nil
	case config.HasherXXH3:
		return hashmap.XXH3String, nil
	}
	return nil, errors.Errorf("unknown hasher %q", name)
}

// Keys returns n zero padded decimal keys of the given width.
func Keys(n, size int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("%0*d", size, i)
	}
	return keys
}

// Result reports one workload round.
type Result struct {
	Inserted int
	Hits     int
	Misses   int
	Erased   int

	InsertTime time.Duration
	LookupTime time.Duration
	EraseTime  time.Duration

	Stats hashmap.Stats
}

// Run inserts every key, looks up random keys (half of them absent) and erases
// a ratio of the inserted keys.
func Run(m *hashmap.HashMap[string, int], keys []string, cfg config.BenchConfig) Result {
	var r Result
	rnd := rand.New(rand.NewSource(cfg.Seed))

	start := time.Now()
	for i, key := range keys {
		if m.Insert(key, i) {
			r.Inserted++
		}
	}
	r.InsertTime = time.Since(start)

	start = time.Now()
	for i := 0; i < cfg.Lookups; i++ {
		n := rnd.Intn(2 * len(keys))
		if n >= len(keys) {
			if m.Contains(fmt.Sprintf("missing-%d", n)) {
				r.Hits++
			} else {
				r.Misses++
			}
			continue
		}
		if _, ok := m.Get(keys[n]); ok {
			r.Hits++
		} else {
			r.Misses++
		}
	}
	r.LookupTime = time.Since(start)

	start = time.Now()
	erase := int(float64(len(keys)) * cfg.EraseRatio)
	for _, i := range rnd.Perm(len(keys))[:erase] {
		if m.Erase(keys[i]) {
			r.Erased++
		}
	}
	r.EraseTime = time.Since(start)

	r.Stats = m.Stats()
	return r
}
