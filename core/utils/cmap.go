package utils

import "sync"

// CMap is a concurrency-safe map with typed keys and values.
// The zero value is ready to use. A CMap must not be copied after first use.
type CMap[K comparable, V any] struct {
	sm sync.Map
}

// Load returns the value stored for key, if any.
func (m *CMap[K, V]) Load(key K) (value V, ok bool) {
	v, o := m.sm.Load(key)
	if !o {
		return value, o
	}
	return v.(V), o
}

// LoadOrStore returns the existing value for key if present.
// Otherwise it stores and returns value. loaded is true if the value was loaded.
func (m *CMap[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	a, l := m.sm.LoadOrStore(key, value)
	return a.(V), l
}

// Store sets the value for key.
func (m *CMap[K, V]) Store(key K, value V) {
	m.sm.Store(key, value)
}

// Delete removes key.
func (m *CMap[K, V]) Delete(key K) {
	m.sm.Delete(key)
}

// Range calls f for each key and value until f returns false.
// Range does not correspond to a consistent snapshot of the map.
func (m *CMap[K, V]) Range(f func(key K, value V) bool) {
	m.sm.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

// Len counts the entries currently in the map.
func (m *CMap[K, V]) Len() int {
	n := 0
	m.sm.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Clear deletes all entries.
func (m *CMap[K, V]) Clear() {
	m.sm.Clear()
}
