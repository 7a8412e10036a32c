// Package rbtree provides ordered map and set containers backed by the
// intrusive red-black tree in the intrusive subpackage. Use this package
// when the container should own its entries; use intrusive directly to
// embed nodes in your own records.
package rbtree

import "github.com/vijunag/rbtree/intrusive"

type entry[K, V any] struct {
	node  intrusive.Node[entry[K, V]]
	key   K
	value V
}

// Map is an ordered map from K to V.
//
// Write operations are not safe for concurrent use by multiple
// goroutines.
type Map[K, V any] struct {
	t intrusive.Tree[entry[K, V]]
}

// MakeMap returns an empty Map ordered by cmp, which must be a total
// order over K.
func MakeMap[K, V any](cmp func(K, K) int) Map[K, V] {
	return Map[K, V]{
		t: intrusive.Make[entry[K, V]](func(a, b *entry[K, V]) int {
			return cmp(a.key, b.key)
		}),
	}
}

// Upsert adds the given key and value to the map. If the key is already
// present its value is replaced and the previous value returned.
func (m *Map[K, V]) Upsert(k K, v V) (replacedV V, replaced bool) {
	probe := entry[K, V]{key: k}
	if n := m.t.Search(&probe); n != nil {
		e := n.Item()
		replacedV, e.value = e.value, v
		return replacedV, true
	}
	e := &entry[K, V]{key: k, value: v}
	e.node.Init(e)
	m.t.Insert(&e.node)
	return replacedV, false
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	probe := entry[K, V]{key: k}
	e, ok := m.t.Get(&probe)
	if !ok {
		return v, false
	}
	return e.value, true
}

// Delete removes k from the map, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) (removed bool) {
	probe := entry[K, V]{key: k}
	n := m.t.Search(&probe)
	if n == nil {
		return false
	}
	m.t.Delete(n)
	return true
}

// Len returns the number of entries currently in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// MapIterator visits a Map's entries in ascending key order.
type MapIterator[K, V any] struct {
	it intrusive.Iterator[entry[K, V]]
}

// Iterator returns a new MapIterator. It is not safe to continue using
// an iterator after modifications are made to the map.
func (m *Map[K, V]) Iterator() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.t.MakeIter()}
}

func (it *MapIterator[K, V]) First()      { it.it.First() }
func (it *MapIterator[K, V]) Next()       { it.it.Next() }
func (it *MapIterator[K, V]) Valid() bool { return it.it.Valid() }
func (it *MapIterator[K, V]) Cur() K      { return it.it.Cur().key }
func (it *MapIterator[K, V]) Value() V    { return it.it.Cur().value }

// Set is an ordered set of K.
type Set[K any] struct {
	m Map[K, struct{}]
}

// MakeSet returns an empty Set ordered by cmp.
func MakeSet[K any](cmp func(K, K) int) Set[K] {
	return Set[K]{m: MakeMap[K, struct{}](cmp)}
}

func (s *Set[K]) Add(k K)           { s.m.Upsert(k, struct{}{}) }
func (s *Set[K]) Remove(k K) bool   { return s.m.Delete(k) }
func (s *Set[K]) Contains(k K) bool { _, ok := s.m.Get(k); return ok }
func (s *Set[K]) Len() int          { return s.m.Len() }

// SetIterator visits a Set's keys in ascending order.
type SetIterator[K any] struct {
	it MapIterator[K, struct{}]
}

// Iterator returns a new SetIterator.
func (s *Set[K]) Iterator() SetIterator[K] {
	return SetIterator[K]{it: s.m.Iterator()}
}

func (it *SetIterator[K]) First()      { it.it.First() }
func (it *SetIterator[K]) Next()       { it.it.Next() }
func (it *SetIterator[K]) Valid() bool { return it.it.Valid() }
func (it *SetIterator[K]) Cur() K      { return it.it.Cur() }
