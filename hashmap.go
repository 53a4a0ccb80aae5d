// Package hashmap implements a separately chained hash map whose chains are
// contiguous runs inside one shared doubly linked list of all elements.
//
// A HashMap is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
package hashmap

import (
	"errors"
	"iter"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by At when the key is not present.
	ErrNotFound = errors.New("hashmap: key not found")

	// ErrIteratorInvalidated is the panic value raised when an iterator or a
	// range over All, Keys or Values observes a structural modification.
	ErrIteratorInvalidated = errors.New("hashmap: iterator used after structural modification")
)

const defaultCapacity = 8

// Pair is a key value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMap maps unique keys to values. The zero value is an empty map with
// capacity 8 and the default hasher.
//
// Pointers and iterators obtained from a HashMap are valid until the next
// insert of a new key, erase, clear or growth.
type HashMap[K comparable, V any] struct {
	list  list[K, V]
	index index

	hasher func(key K) uint64
	equal  func(a, b K) bool
	logger *zap.Logger

	initCapacity int
	mods         uint64
	rehashes     uint64
}

// New creates an empty map.
func New[K comparable, V any](options ...Option[K, V]) *HashMap[K, V] {
	m := new(HashMap[K, V])
	m.init(options)
	return m
}

// NewFromSeq creates a map holding the pairs of seq. When seq repeats a key the first value wins.
func NewFromSeq[K comparable, V any](seq iter.Seq2[K, V], options ...Option[K, V]) *HashMap[K, V] {
	m := New[K, V](options...)
	for key, value := range seq {
		m.Insert(key, value)
	}
	return m
}

// NewFromPairs creates a map holding pairs. When pairs repeat a key the first value wins.
func NewFromPairs[K comparable, V any](pairs []Pair[K, V], options ...Option[K, V]) *HashMap[K, V] {
	m := New[K, V](options...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

func (m *HashMap[K, V]) init(options []Option[K, V]) {
	for _, o := range options {
		o.ApplyToHashMap(m)
	}
	if m.initCapacity == 0 {
		m.initCapacity = defaultCapacity
	}
	if m.hasher == nil {
		m.hasher = DefaultHasher[K]()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.list.Init(m.initCapacity)
	m.index.init(m.initCapacity)
}

func (m *HashMap[K, V]) lazyInit() {
	if m.index.buckets == nil {
		m.init(nil)
	}
}

func (m *HashMap[K, V]) keyEqual(a, b K) bool {
	if m.equal != nil {
		return m.equal(a, b)
	}
	return a == b
}

// front returns the first list node, or empty for an uninitialised map.
func (m *HashMap[K, V]) front() uint32 {
	if len(m.list.nodes) == 0 {
		return empty
	}
	return m.list.Front()
}

func (m *HashMap[K, V]) find(key K) (b int, i uint32) {
	if len(m.index.buckets) == 0 {
		return 0, empty
	}
	b = m.index.bucketOf(m.hasher(key))
	return b, m.lookup(b, key)
}

func (m *HashMap[K, V]) insert(key K, value V) (uint32, bool) {
	m.lazyInit()

	b, i := m.find(key)
	if i != empty {
		return i, false
	}

	i = m.link(b, key, value)
	m.mods++

	if m.list.Len() > m.index.capacity() {
		m.grow()
		_, i = m.find(key)
	}
	return i, true
}

// Clone returns a deep copy with the same capacity and hash function.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := &HashMap[K, V]{
		hasher:       m.hasher,
		equal:        m.equal,
		logger:       m.logger,
		initCapacity: m.Capacity(),
	}
	c.init(nil)
	for i := m.front(); i != empty; i = m.list.nodes[i].next {
		c.insert(m.list.nodes[i].key, m.list.nodes[i].value)
	}
	return c
}

// Assign replaces the contents of m with a copy of src and adopts its hash
// function and key equality. The capacity of m is kept. Assigning a map to
// itself does nothing.
func (m *HashMap[K, V]) Assign(src *HashMap[K, V]) {
	if m == src {
		return
	}
	m.lazyInit()
	m.Clear()
	if src.hasher != nil {
		m.hasher = src.hasher
	}
	m.equal = src.equal
	for i := src.front(); i != empty; i = src.list.nodes[i].next {
		m.insert(src.list.nodes[i].key, src.list.nodes[i].value)
	}
}

// HashFunction returns the hash function of the map.
func (m *HashMap[K, V]) HashFunction() func(key K) uint64 {
	m.lazyInit()
	return m.hasher
}

// Insert adds key with value and reports whether it was added.
// An existing key keeps its value.
func (m *HashMap[K, V]) Insert(key K, value V) bool {
	_, inserted := m.insert(key, value)
	return inserted
}

// Erase removes key and reports whether it was present.
func (m *HashMap[K, V]) Erase(key K) bool {
	b, i := m.find(key)
	if i == empty {
		return false
	}
	m.unlink(b, i)
	m.mods++
	return true
}

// Lookup returns a pointer to the value of key.
func (m *HashMap[K, V]) Lookup(key K) (*V, bool) {
	if _, i := m.find(key); i != empty {
		return &m.list.nodes[i].value, true
	}
	return nil, false
}

// Get returns the value of key.
func (m *HashMap[K, V]) Get(key K) (value V, ok bool) {
	if _, i := m.find(key); i != empty {
		value, ok = m.list.nodes[i].value, true
	}
	return
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, i := m.find(key)
	return i != empty
}

// At returns the value of key, or ErrNotFound. It never modifies the map.
func (m *HashMap[K, V]) At(key K) (V, error) {
	if _, i := m.find(key); i != empty {
		return m.list.nodes[i].value, nil
	}
	var zero V
	return zero, ErrNotFound
}

// Index returns a pointer to the value of key, inserting the zero value first
// when key is absent. Inserting may grow the map.
func (m *HashMap[K, V]) Index(key K) *V {
	var zero V
	i, _ := m.insert(key, zero)
	return &m.list.nodes[i].value
}

// Clear removes all elements. The capacity is kept.
func (m *HashMap[K, V]) Clear() {
	if m.index.buckets == nil {
		return
	}
	m.list.Reset()
	m.index.init(m.index.capacity())
	m.mods++
}

// Len returns the number of elements.
func (m *HashMap[K, V]) Len() int {
	return m.list.Len()
}

// Empty reports whether the map has no elements.
func (m *HashMap[K, V]) Empty() bool {
	return m.list.Len() == 0
}

// Capacity returns the number of buckets.
func (m *HashMap[K, V]) Capacity() int {
	if m.index.buckets == nil {
		if m.initCapacity != 0 {
			return m.initCapacity
		}
		return defaultCapacity
	}
	return m.index.capacity()
}
