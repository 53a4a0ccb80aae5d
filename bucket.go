// Copyright 2023 Phus Lu. All rights reserved.

package hashmap

// empty marks a bucket with no elements. It is the list root, which never holds an element.
const empty uint32 = 0

// bucket bounds a contiguous run [first, last] of list nodes.
type bucket struct {
	first uint32
	last  uint32
}

// index is the bucket array. Buckets never shrink.
type index struct {
	buckets []bucket
	mask    uint64 // capacity-1 when capacity is a power of two, otherwise 0
}

func (x *index) init(capacity int) {
	if cap(x.buckets) >= capacity {
		x.buckets = x.buckets[:capacity]
		clear(x.buckets)
	} else {
		x.buckets = make([]bucket, capacity)
	}
	x.mask = 0
	if capacity&(capacity-1) == 0 {
		x.mask = uint64(capacity - 1)
	}
}

func (x *index) capacity() int {
	return len(x.buckets)
}

func (x *index) bucketOf(hash uint64) int {
	if x.mask != 0 {
		return int(hash & x.mask)
	}
	return int(hash % uint64(len(x.buckets)))
}

// lookup scans the run of bucket b for key and returns its node index or empty.
func (m *HashMap[K, V]) lookup(b int, key K) uint32 {
	bk := m.index.buckets[b]
	if bk.first == empty {
		return empty
	}
	for i := bk.first; ; i = m.list.nodes[i].next {
		if m.keyEqual(m.list.nodes[i].key, key) {
			return i
		}
		if i == bk.last {
			return empty
		}
	}
}

// link places a new element into bucket b. A new run opens at the back of the
// list; an existing run grows at its front.
func (m *HashMap[K, V]) link(b int, key K, value V) uint32 {
	bk := &m.index.buckets[b]
	if bk.first == empty {
		i := m.list.InsertBefore(0, key, value)
		bk.first, bk.last = i, i
		return i
	}
	i := m.list.InsertBefore(bk.first, key, value)
	bk.first = i
	return i
}

// unlink removes node i from bucket b keeping the run bounds valid.
func (m *HashMap[K, V]) unlink(b int, i uint32) {
	bk := &m.index.buckets[b]
	switch {
	case bk.first == bk.last:
		m.list.Remove(i)
		*bk = bucket{}
	case i == bk.first:
		bk.first = m.list.Remove(i)
	case i == bk.last:
		bk.last = m.list.nodes[i].prev
		m.list.Remove(i)
	default:
		m.list.Remove(i)
	}
}
