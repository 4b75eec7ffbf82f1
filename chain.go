package seqkit

// Chain concatenates two sequences: positions [0, a.Len()) read from a,
// the rest from b shifted down by a.Len(). The length is the sum of the
// input lengths.
func Chain[T any](a, b Sequence[T]) Sequence[T] {
	return chainSeq[T]{a: a, b: b}
}

type chainSeq[T any] struct {
	a, b Sequence[T]
}

func (c chainSeq[T]) Len() int {
	return c.a.Len() + c.b.Len()
}

func (c chainSeq[T]) Get(index int) (T, bool) {
	if n := c.a.Len(); index >= n {
		return c.b.Get(index - n)
	}
	return c.a.Get(index)
}

// ChainMut is Chain over two mutable sources; writes route to the side
// that owns the position.
func ChainMut[T any](a, b MutSequence[T]) MutSequence[T] {
	return mutChainSeq[T]{chainSeq: chainSeq[T]{a: a, b: b}, ma: a, mb: b}
}

type mutChainSeq[T any] struct {
	chainSeq[T]
	ma, mb MutSequence[T]
}

func (c mutChainSeq[T]) Set(index int, value T) bool {
	if n := c.ma.Len(); index >= n {
		return c.mb.Set(index-n, value)
	}
	return c.ma.Set(index, value)
}
