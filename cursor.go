package seqkit

import "iter"

// Iter returns a cursor over s, yielding Get(0) through Get(Len()-1).
// Every whole-sequence consumer in this package walks through this one
// path, so traversal order is identical for every concrete sequence
// type. The sequence must not change length while the cursor is live.
func Iter[T any](s Sequence[T]) Iterator[T] {
	return &cursor[T]{seq: s}
}

type cursor[T any] struct {
	seq Sequence[T]
	pos int
}

func (c *cursor[T]) Next() (T, bool) {
	v, ok := c.seq.Get(c.pos)
	if ok {
		c.pos++
	}
	return v, ok
}

func (c *cursor[T]) Remaining() int {
	if n := c.seq.Len() - c.pos; n > 0 {
		return n
	}
	return 0
}

// All returns a range-over-func view of s:
//
//	for v := range seqkit.All(s) { ... }
func All[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := Iter(s)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All2 is like All but also yields positions, ascending from 0.
func All2[T any](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := Iter(s)
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Collect copies s into a newly allocated slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	it := Iter(s)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Drain exhausts it and returns the yielded elements in order.
func Drain[T any](it Iterator[T]) []T {
	out := make([]T, 0, it.Remaining())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}
