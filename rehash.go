package hashmap

import (
	"go.uber.org/zap"
)

// grow doubles the bucket count and re-inserts every element in list order.
// Buckets are rebuilt from scratch, so list order is not preserved.
func (m *HashMap[K, V]) grow() {
	from := m.index.capacity()

	snapshot := make([]Pair[K, V], 0, m.list.Len())
	for i := m.list.Front(); i != empty; i = m.list.nodes[i].next {
		n := &m.list.nodes[i]
		snapshot = append(snapshot, Pair[K, V]{n.key, n.value})
	}

	m.list.Reset()
	m.index.init(from * 2)
	for _, p := range snapshot {
		m.insert(p.Key, p.Value)
	}

	m.rehashes++
	m.mods++

	m.logger.Debug("hashmap grow",
		zap.Int("from", from),
		zap.Int("to", m.index.capacity()),
		zap.Int("len", m.list.Len()))
}
