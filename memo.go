package seqkit

import "container/list"

// Memoize returns a view of s that caches up to capacity computed
// elements with LRU eviction. It is meant for expensive lazy views (a
// Map with a costly transform, a deep adaptor chain) whose positions are
// read repeatedly; for a plain slice it only adds overhead.
//
// The view assumes the source is not mutated while memoized reads are
// served, and it is not safe for concurrent use. Panics when capacity
// is not positive.
func Memoize[T any](s Sequence[T], capacity int) Sequence[T] {
	if capacity <= 0 {
		panic("seqkit: memoize capacity must be positive")
	}
	return &memoSeq[T]{
		src:      s,
		capacity: capacity,
		items:    make(map[int]*list.Element),
		eviction: list.New(),
	}
}

type memoEntry[T any] struct {
	index int
	value T
}

type memoSeq[T any] struct {
	src      Sequence[T]
	capacity int
	items    map[int]*list.Element
	eviction *list.List
}

func (m *memoSeq[T]) Len() int {
	return m.src.Len()
}

func (m *memoSeq[T]) Get(index int) (T, bool) {
	if elem, ok := m.items[index]; ok {
		m.eviction.MoveToFront(elem)
		return elem.Value.(*memoEntry[T]).value, true
	}

	v, ok := m.src.Get(index)
	if !ok {
		var zero T
		return zero, false
	}

	m.items[index] = m.eviction.PushFront(&memoEntry[T]{index: index, value: v})
	if m.eviction.Len() > m.capacity {
		m.evictOldest()
	}
	return v, true
}

func (m *memoSeq[T]) evictOldest() {
	elem := m.eviction.Back()
	if elem == nil {
		return
	}
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*memoEntry[T]).index)
}
