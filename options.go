package hashmap

import (
	"go.uber.org/zap"
)

// Option is an interface for HashMap configuration.
type Option[K comparable, V any] interface {
	ApplyToHashMap(*HashMap[K, V])
}

// WithCapacity specifies the initial bucket count of the map. It must be positive.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return &capacityOption[K, V]{capacity: capacity}
}

type capacityOption[K comparable, V any] struct {
	capacity int
}

func (o *capacityOption[K, V]) ApplyToHashMap(m *HashMap[K, V]) {
	if o.capacity <= 0 {
		panic("hashmap: capacity must be positive")
	}
	m.initCapacity = o.capacity
}

// WithHasher specifies the hash function of the map.
func WithHasher[K comparable, V any](hasher func(key K) uint64) Option[K, V] {
	return &hasherOption[K, V]{hasher: hasher}
}

type hasherOption[K comparable, V any] struct {
	hasher func(key K) uint64
}

func (o *hasherOption[K, V]) ApplyToHashMap(m *HashMap[K, V]) {
	if o.hasher == nil {
		panic("hashmap: nil hasher")
	}
	m.hasher = o.hasher
}

// WithEqual specifies the key equality of the map. Keys that are equal must hash equally.
func WithEqual[K comparable, V any](equal func(a, b K) bool) Option[K, V] {
	return &equalOption[K, V]{equal: equal}
}

type equalOption[K comparable, V any] struct {
	equal func(a, b K) bool
}

func (o *equalOption[K, V]) ApplyToHashMap(m *HashMap[K, V]) {
	m.equal = o.equal
}

// WithLogger specifies the logger receiving growth events at debug level.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return &loggerOption[K, V]{logger: logger}
}

type loggerOption[K comparable, V any] struct {
	logger *zap.Logger
}

func (o *loggerOption[K, V]) ApplyToHashMap(m *HashMap[K, V]) {
	if o.logger == nil {
		m.logger = zap.NewNop()
		return
	}
	m.logger = o.logger
}
