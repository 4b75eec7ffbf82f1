package seqkit

import "golang.org/x/exp/constraints"

// Min returns the smallest element of s, or false when s is empty.
func Min[T constraints.Ordered](s Sequence[T]) (T, bool) {
	it := Iter(s)
	best, ok := it.Next()
	if !ok {
		return best, false
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if v < best {
			best = v
		}
	}
	return best, true
}

// Max returns the largest element of s, or false when s is empty.
func Max[T constraints.Ordered](s Sequence[T]) (T, bool) {
	it := Iter(s)
	best, ok := it.Next()
	if !ok {
		return best, false
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if v > best {
			best = v
		}
	}
	return best, true
}

// Equal reports whether a and b have the same length and equal elements
// at every position.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := Iter(a), Iter(b)
	for {
		av, aok := ia.Next()
		bv, bok := ib.Next()
		if !aok || !bok {
			return aok == bok
		}
		if av != bv {
			return false
		}
	}
}
