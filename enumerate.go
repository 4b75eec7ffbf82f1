package seqkit

// Indexed pairs an element with its position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate returns a view of s whose elements carry their positions.
// Length and access pattern are unchanged.
func Enumerate[T any](s Sequence[T]) Sequence[Indexed[T]] {
	return enumSeq[T]{src: s}
}

type enumSeq[T any] struct {
	src Sequence[T]
}

func (e enumSeq[T]) Len() int {
	return e.src.Len()
}

func (e enumSeq[T]) Get(index int) (Indexed[T], bool) {
	v, ok := e.src.Get(index)
	if !ok {
		return Indexed[T]{}, false
	}
	return Indexed[T]{Index: index, Value: v}, true
}

// EnumerateMut is Enumerate over a mutable source. Set stores the Value
// component at the addressed position; the Index component of the written
// pair is ignored, positions are not reassignable.
func EnumerateMut[T any](s MutSequence[T]) MutSequence[Indexed[T]] {
	return mutEnumSeq[T]{enumSeq: enumSeq[T]{src: s}, mut: s}
}

type mutEnumSeq[T any] struct {
	enumSeq[T]
	mut MutSequence[T]
}

func (e mutEnumSeq[T]) Set(index int, value Indexed[T]) bool {
	return e.mut.Set(index, value.Value)
}
