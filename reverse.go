package seqkit

// Reverse returns a mirrored view of s: position i reads source position
// Len()-1-i. Reversing twice restores the original order.
func Reverse[T any](s Sequence[T]) Sequence[T] {
	return revSeq[T]{src: s}
}

type revSeq[T any] struct {
	src Sequence[T]
}

func (r revSeq[T]) Len() int {
	return r.src.Len()
}

func (r revSeq[T]) Get(index int) (T, bool) {
	if index < 0 || index >= r.src.Len() {
		var zero T
		return zero, false
	}
	return r.src.Get(r.src.Len() - 1 - index)
}

// ReverseMut is Reverse over a mutable source; writes land at the
// mirrored position.
func ReverseMut[T any](s MutSequence[T]) MutSequence[T] {
	return mutRevSeq[T]{revSeq: revSeq[T]{src: s}, mut: s}
}

type mutRevSeq[T any] struct {
	revSeq[T]
	mut MutSequence[T]
}

func (r mutRevSeq[T]) Set(index int, value T) bool {
	if index < 0 || index >= r.mut.Len() {
		return false
	}
	return r.mut.Set(r.mut.Len()-1-index, value)
}
