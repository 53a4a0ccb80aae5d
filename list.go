// Copyright 2023 Phus Lu. All rights reserved.
package hashmap

type node[K comparable, V any] struct {
	key   K
	value V
	next  uint32
	prev  uint32
}

// list is an arraylist holding every element of the map, slot 0 is the root.
// Freed slots are chained through next and reused by later inserts.
type list[K comparable, V any] struct {
	nodes  []node[K, V]
	free   uint32
	length int
}

func (l *list[K, V]) Init(size int) {
	if size < 0 {
		size = 0
	}
	l.nodes = make([]node[K, V], 1, size+1)
	l.free = 0
	l.length = 0
}

// Reset drops all elements but keeps the backing array.
func (l *list[K, V]) Reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.nodes[0].next = 0
	l.nodes[0].prev = 0
	l.free = 0
	l.length = 0
}

func (l *list[K, V]) alloc() uint32 {
	if i := l.free; i != 0 {
		l.free = l.nodes[i].next
		return i
	}
	l.nodes = append(l.nodes, node[K, V]{})
	return uint32(len(l.nodes) - 1)
}

// InsertBefore links a new node in front of at and returns its index.
// Passing the root (0) appends to the back.
func (l *list[K, V]) InsertBefore(at uint32, key K, value V) uint32 {
	i := l.alloc()
	n := &l.nodes[i]
	n.key = key
	n.value = value
	n.next = at
	n.prev = l.nodes[at].prev

	l.nodes[n.prev].next = i
	l.nodes[at].prev = i
	l.length++
	return i
}

// Remove unlinks node i, recycles its slot and returns the index that followed it.
func (l *list[K, V]) Remove(i uint32) uint32 {
	n := &l.nodes[i]
	next := n.next

	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev

	*n = node[K, V]{next: l.free}
	l.free = i
	l.length--
	return next
}

func (l *list[K, V]) Front() uint32 {
	return l.nodes[0].next
}

func (l *list[K, V]) Back() uint32 {
	return l.nodes[0].prev
}

func (l *list[K, V]) Len() int {
	return l.length
}
