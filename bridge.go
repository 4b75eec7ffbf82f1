package seqkit

import "golang.org/x/exp/constraints"

// FromSlice wraps a caller-owned slice as a mutable sequence. The view
// does not copy: reads and writes go straight through to the slice.
func FromSlice[T any](items []T) MutSequence[T] {
	return sliceSeq[T](items)
}

type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int {
	return len(s)
}

func (s sliceSeq[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, false
	}
	return s[index], true
}

func (s sliceSeq[T]) Set(index int, value T) bool {
	if index < 0 || index >= len(s) {
		return false
	}
	s[index] = value
	return true
}

// Range returns the computed sequence start, start+1, ..., stop-1.
// The sequence is empty when stop <= start.
func Range[I constraints.Integer](start, stop I) Sequence[I] {
	if stop < start {
		stop = start
	}
	return rangeSeq[I]{start: start, stop: stop}
}

type rangeSeq[I constraints.Integer] struct {
	start, stop I
}

func (r rangeSeq[I]) Len() int {
	return int(r.stop - r.start)
}

func (r rangeSeq[I]) Get(index int) (I, bool) {
	if index < 0 || index >= r.Len() {
		return 0, false
	}
	return r.start + I(index), true
}

// Generate returns a computed sequence of n elements where element i is
// f(i). f runs on every access.
func Generate[T any](n int, f func(int) T) Sequence[T] {
	if n < 0 {
		n = 0
	}
	return genSeq[T]{n: n, f: f}
}

type genSeq[T any] struct {
	n int
	f func(int) T
}

func (g genSeq[T]) Len() int {
	return g.n
}

func (g genSeq[T]) Get(index int) (T, bool) {
	if index < 0 || index >= g.n {
		var zero T
		return zero, false
	}
	return g.f(index), true
}
