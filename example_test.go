package hashmap_test

import (
	"errors"
	"fmt"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
)

func ExampleNew() {
	m := hashmap.New[string, int]()

	m.Insert("foobar", 42)
	m.Insert("foobar", 7)

	v, ok := m.Get("foobar")
	fmt.Println(v, ok, m.Len())
	// Output: 42 true 1
}

func ExampleWithHasher() {
	m := hashmap.New[string, int](hashmap.WithHasher[string, int](hashmap.XXHashString))

	m.Insert("foobar", 42)
	fmt.Println(m.At("foobar"))
	// Output: 42 <nil>
}

func ExampleWithCapacity() {
	m := hashmap.New[int, int](hashmap.WithCapacity[int, int](3))
	for i := 0; i < 4; i++ {
		m.Insert(i, i)
	}
	fmt.Println(m.Len(), m.Capacity())
	// Output: 4 6
}

func ExampleHashMap_Index() {
	counts := hashmap.New[string, int]()
	for _, word := range []string{"a", "b", "a", "c", "a"} {
		*counts.Index(word) += 1
	}
	fmt.Println(counts.At("a"))
	// Output: 3 <nil>
}

func ExampleHashMap_At() {
	m := hashmap.New[string, int]()
	_, err := m.At("missing")
	fmt.Println(errors.Is(err, hashmap.ErrNotFound))
	// Output: true
}

func ExampleHashMap_Begin() {
	m := hashmap.New[int, string](hashmap.WithHasher[int, string](func(key int) uint64 { return uint64(key) }))
	m.Insert(1, "one")
	m.Insert(9, "nine")
	m.Insert(2, "two")

	for it := m.Begin(); it.Valid(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}
	// Output:
	// 9 nine
	// 1 one
	// 2 two
}
