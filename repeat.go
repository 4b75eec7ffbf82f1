package seqkit

// Repeat returns a view of n back-to-back repetitions of s; position i
// reads source position i modulo s.Len(). n == 0 yields an empty
// sequence. Fails with ErrInvalidSize when n < 0.
func Repeat[T any](s Sequence[T], n int) (Sequence[T], error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return repeatSeq[T]{src: s, n: n}, nil
}

type repeatSeq[T any] struct {
	src Sequence[T]
	n   int
}

func (r repeatSeq[T]) Len() int {
	return r.src.Len() * r.n
}

func (r repeatSeq[T]) Get(index int) (T, bool) {
	if index < 0 || index >= r.Len() {
		var zero T
		return zero, false
	}
	return r.src.Get(index % r.src.Len())
}
