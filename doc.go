// Package seqkit provides a uniform, capability-typed abstraction for
// sequences: linear collections whose length is known exactly at run time
// but whose storage may be a contiguous slice, a computed range, or a
// lazily-transformed view over another sequence.
//
// Generic algorithms written against the package's interfaces operate
// identically over owned collections, borrowed views, and on-the-fly
// adaptors, without re-implementing access logic per container kind.
//
// # Capability Model
//
// A sequence is classified by what it supports, not by what it is. The
// capabilities are independent, narrow interfaces:
//
//   - Sequence[T]: random-access reads. Len is O(1) and exact; Get returns
//     the element at a position, or false for any position outside
//     [0, Len()).
//   - MutSequence[T]: random-access reads and writes. Set stores a value
//     at a position. Mutation is a store operation rather than an
//     aliasing pointer, so a stale mutable reference cannot exist.
//   - Iterator[T]: sequential-only, consuming access. Next yields
//     front-to-back and cannot be rewound; Remaining is always the exact
//     count left.
//
// Every adaptor advertises exactly the capabilities it can honor: a
// read-only view never satisfies MutSequence, and capability loss is
// decided at construction time, not discovered at run time.
//
// # Usage
//
//	s := seqkit.FromSlice([]int{4, 5, 6, 7})
//
//	v, ok := s.Get(1)              // 5, true
//	first, _ := seqkit.First(s)    // 4
//
//	doubled := seqkit.Map(s, func(v int) int { return v * 2 })
//	rev := seqkit.Reverse(s)
//
//	for v := range seqkit.All(rev) {
//		fmt.Println(v) // 7, 6, 5, 4
//	}
//
//	out := seqkit.Collect(doubled) // []int{8, 10, 12, 14}
//
// # Adaptors
//
// Adaptors wrap one or more source sequences and transform them lazily:
// Map, Enumerate, Chain, Zip, Reverse, Slice, Windows, Chunks, Select,
// Compress and Repeat. An adaptor holds its sources for its whole
// lifetime; chains of adaptors form ownership trees, never cycles.
// Nothing is computed or copied until an element is accessed, and no
// adaptor allocates storage proportional to the data.
//
// Adaptors that can preserve the write capability have a Mut
// counterpart (EnumerateMut, ChainMut, ZipMut, ReverseMut, SliceMut,
// SelectMut) taking and returning MutSequence. Map has no mutable
// variant: a transformed view offers no write-back.
//
// # Error Handling
//
// The package distinguishes two outcomes and never conflates them:
//
//   - Absence: reading or writing outside [0, Len()), or stepping an
//     exhausted Iterator, is an expected branch reported with a comma-ok
//     boolean. It never panics and never produces an error value.
//   - Construction violations: malformed adaptor parameters (slice
//     bounds out of order, a zero window size, a selection index outside
//     the source) are programmer errors reported as sentinel errors from
//     the constructor. A constructor never returns a half-valid adaptor.
//
// Sentinel errors (ErrInvalidRange, ErrInvalidSize, ErrIndexOutOfRange,
// ErrLengthMismatch) can be matched with errors.Is.
//
// # Laziness
//
// Transforms run on every access. If a Map function is expensive and
// elements are read repeatedly, Collect the result once and wrap the
// slice instead.
//
// # Thread Safety
//
// The package adds no synchronization. A sequence is safe for concurrent
// readers if its underlying storage is; any write requires exclusive
// access for its duration. Iterators assume the sequence's length does
// not change while they are live.
package seqkit
