package seqkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seqkit"
)

func TestRepeat(t *testing.T) {
	t.Run("tiles the source", func(t *testing.T) {
		r, err := seqkit.Repeat[int](seqkit.Range(2, 5), 2)
		require.NoError(t, err)

		assert.Equal(t, 6, r.Len())
		assert.Equal(t, []int{2, 3, 4, 2, 3, 4}, seqkit.Collect(r))

		v, ok := r.Get(4)
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("zero repetitions yields empty", func(t *testing.T) {
		r, err := seqkit.Repeat[int](seqkit.Range(0, 3), 0)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("empty source stays empty", func(t *testing.T) {
		r, err := seqkit.Repeat[int](seqkit.FromSlice([]int{}), 5)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Len())

		_, ok := r.Get(0)
		assert.False(t, ok)
	})

	t.Run("rejects negative count at construction", func(t *testing.T) {
		_, err := seqkit.Repeat[int](seqkit.Range(0, 3), -1)
		assert.ErrorIs(t, err, seqkit.ErrInvalidSize)
	})
}
