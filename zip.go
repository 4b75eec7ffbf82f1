package seqkit

// Pair holds one element from each side of a zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two sequences elementwise into a sequence of pairs. The
// shorter side truncates the longer: the result's length is the minimum
// of the two input lengths.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	return zipSeq[A, B]{a: a, b: b}
}

type zipSeq[A, B any] struct {
	a Sequence[A]
	b Sequence[B]
}

func (z zipSeq[A, B]) Len() int {
	return min(z.a.Len(), z.b.Len())
}

func (z zipSeq[A, B]) Get(index int) (Pair[A, B], bool) {
	if index < 0 || index >= z.Len() {
		return Pair[A, B]{}, false
	}
	av, aok := z.a.Get(index)
	bv, bok := z.b.Get(index)
	if !aok || !bok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: av, Second: bv}, true
}

// ZipMut is Zip over two mutable sources. Set stores the pair's First
// into the left side and Second into the right side.
func ZipMut[A, B any](a MutSequence[A], b MutSequence[B]) MutSequence[Pair[A, B]] {
	return mutZipSeq[A, B]{zipSeq: zipSeq[A, B]{a: a, b: b}, ma: a, mb: b}
}

type mutZipSeq[A, B any] struct {
	zipSeq[A, B]
	ma MutSequence[A]
	mb MutSequence[B]
}

func (z mutZipSeq[A, B]) Set(index int, value Pair[A, B]) bool {
	if index < 0 || index >= z.Len() {
		return false
	}
	return z.ma.Set(index, value.First) && z.mb.Set(index, value.Second)
}
