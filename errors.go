package seqkit

import "errors"

var (
	// ErrInvalidRange is returned when slice bounds do not satisfy
	// 0 <= start <= end <= Len(). Bounds are never silently clamped.
	ErrInvalidRange = errors.New("seqkit: slice bounds out of range")
	// ErrInvalidSize is returned for a non-positive window or chunk size,
	// or a negative repeat count.
	ErrInvalidSize = errors.New("seqkit: invalid size")
	// ErrIndexOutOfRange is returned when a selection contains an index
	// outside the source sequence.
	ErrIndexOutOfRange = errors.New("seqkit: selection index out of range")
	// ErrLengthMismatch is returned when two sequences that must be the
	// same length are not, e.g. a compress mask or an assign source.
	ErrLengthMismatch = errors.New("seqkit: sequence lengths do not match")
)
