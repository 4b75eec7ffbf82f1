package seqkit

// Windows returns the overlapping n-wide sub-views of s, length
// max(s.Len()-n+1, 0). Each element is itself a read-only Sequence over
// the shared source: overlapping windows cannot each own the storage.
// Fails with ErrInvalidSize when n <= 0.
func Windows[T any](s Sequence[T], n int) (Sequence[Sequence[T]], error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return windowSeq[T]{src: s, n: n}, nil
}

type windowSeq[T any] struct {
	src Sequence[T]
	n   int
}

func (w windowSeq[T]) Len() int {
	if n := w.src.Len() - w.n + 1; n > 0 {
		return n
	}
	return 0
}

func (w windowSeq[T]) Get(index int) (Sequence[T], bool) {
	if index < 0 || index >= w.Len() {
		return nil, false
	}
	return sliceView[T]{src: w.src, start: index, n: w.n}, true
}

// Chunks returns the non-overlapping n-wide sub-views of s, length
// ceil(s.Len()/n); the last chunk may be shorter. Fails with
// ErrInvalidSize when n <= 0.
func Chunks[T any](s Sequence[T], n int) (Sequence[Sequence[T]], error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return chunkSeq[T]{src: s, n: n}, nil
}

type chunkSeq[T any] struct {
	src Sequence[T]
	n   int
}

func (c chunkSeq[T]) Len() int {
	return (c.src.Len() + c.n - 1) / c.n
}

func (c chunkSeq[T]) Get(index int) (Sequence[T], bool) {
	if index < 0 || index >= c.Len() {
		return nil, false
	}
	start := index * c.n
	return sliceView[T]{src: c.src, start: start, n: min(c.n, c.src.Len()-start)}, true
}
