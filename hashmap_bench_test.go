// go test -v -run=none -bench=. -benchmem
package hashmap

import (
	"fmt"
	"math/rand"
	"testing"
)

const (
	keysize   = 16
	tablesize = 65536
)

var keymap = func() (x [tablesize]string) {
	for i := 0; i < tablesize; i++ {
		x[i] = fmt.Sprintf(fmt.Sprintf("%%0%dd", keysize), i)
	}
	return
}()

func benchmarkGet(b *testing.B, m *HashMap[string, int]) {
	for i := 0; i < tablesize/2; i++ {
		m.Insert(keymap[i], i)
	}
	rnd := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keymap[rnd.Intn(tablesize)])
	}
}

func BenchmarkGetMaphash(b *testing.B) {
	benchmarkGet(b, New[string, int]())
}

func BenchmarkGetXXHash(b *testing.B) {
	benchmarkGet(b, New[string, int](WithHasher[string, int](XXHashString)))
}

func BenchmarkGetXXH3(b *testing.B) {
	benchmarkGet(b, New[string, int](WithHasher[string, int](XXH3String)))
}

func BenchmarkBuiltinMapGet(b *testing.B) {
	m := make(map[string]int)
	for i := 0; i < tablesize/2; i++ {
		m[keymap[i]] = i
	}
	rnd := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m[keymap[rnd.Intn(tablesize)]]
	}
}

func BenchmarkInsertGrow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := New[string, int]()
		for j := 0; j < 4096; j++ {
			m.Insert(keymap[j], j)
		}
	}
}

func BenchmarkInsertErase(b *testing.B) {
	m := New[string, int]()
	for i := 0; i < tablesize/2; i++ {
		m.Insert(keymap[i], i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		key := keymap[tablesize/2+i%(tablesize/2)]
		m.Insert(key, i)
		m.Erase(key)
	}
}
