package hashmap

import (
	"iter"
)

// Iterator is a position in the element list of a HashMap. The iterator that
// is not Valid is the end position.
//
// An iterator panics with ErrIteratorInvalidated when used after a structural
// modification of its map. Setting a value is not structural.
type Iterator[K comparable, V any] struct {
	m    *HashMap[K, V]
	i    uint32
	mods uint64
}

func (m *HashMap[K, V]) iterator(i uint32) Iterator[K, V] {
	return Iterator[K, V]{m: m, i: i, mods: m.mods}
}

// Begin returns an iterator at the first element in list order.
// List order is the order of bucket runs and is rebuilt by growth.
func (m *HashMap[K, V]) Begin() Iterator[K, V] {
	return m.iterator(m.front())
}

// End returns the end iterator.
func (m *HashMap[K, V]) End() Iterator[K, V] {
	return m.iterator(empty)
}

// Find returns an iterator at key, or the end iterator when key is absent.
func (m *HashMap[K, V]) Find(key K) Iterator[K, V] {
	_, i := m.find(key)
	return m.iterator(i)
}

func (it Iterator[K, V]) check() {
	if it.m != nil && it.m.mods != it.mods {
		panic(ErrIteratorInvalidated)
	}
}

func (it Iterator[K, V]) node() *node[K, V] {
	it.check()
	if it.i == empty {
		panic("hashmap: dereference of end iterator")
	}
	return &it.m.list.nodes[it.i]
}

// Valid reports whether the iterator points at an element.
func (it Iterator[K, V]) Valid() bool {
	it.check()
	return it.i != empty
}

// Next advances to the following element. Advancing the end iterator does nothing.
func (it *Iterator[K, V]) Next() {
	if it.Valid() {
		it.i = it.m.list.nodes[it.i].next
	}
}

// Key returns the key at the iterator.
func (it Iterator[K, V]) Key() K {
	return it.node().key
}

// Value returns the value at the iterator.
func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// SetValue replaces the value at the iterator.
func (it Iterator[K, V]) SetValue(value V) {
	it.node().value = value
}

// Equal reports whether both iterators denote the same position of the same map.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.i == other.i
}

// All returns a sequence of the key value pairs in list order. Each range over
// the sequence starts from the front; it panics if the map is structurally
// modified while ranging.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mods := m.mods
		for i := m.front(); i != empty; {
			n := &m.list.nodes[i]
			next := n.next
			if !yield(n.key, n.value) {
				return
			}
			if m.mods != mods {
				panic(ErrIteratorInvalidated)
			}
			i = next
		}
	}
}

// Keys returns a sequence of the keys in list order.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns a sequence of the values in list order.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.All() {
			if !yield(value) {
				return
			}
		}
	}
}
