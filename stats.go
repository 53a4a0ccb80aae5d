package hashmap

// Stats represents map stats.
type Stats struct {
	// Len is the number of elements.
	Len int

	// Capacity is the number of buckets.
	Capacity int

	// UsedBuckets is the number of non-empty buckets.
	UsedBuckets int

	// LongestRun is the element count of the largest bucket.
	LongestRun int

	// Rehashes is the number of growths since the map was created.
	Rehashes uint64
}

// LoadFactor returns Len divided by Capacity.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Capacity)
}

// Stats returns map stats. It walks every bucket.
func (m *HashMap[K, V]) Stats() (stats Stats) {
	stats.Len = m.Len()
	stats.Capacity = m.Capacity()
	stats.Rehashes = m.rehashes
	for _, bk := range m.index.buckets {
		if bk.first == empty {
			continue
		}
		stats.UsedBuckets++
		n := 1
		for i := bk.first; i != bk.last; i = m.list.nodes[i].next {
			n++
		}
		if n > stats.LongestRun {
			stats.LongestRun = n
		}
	}
	return
}
