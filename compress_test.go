package seqkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seqkit"
)

func TestCompress(t *testing.T) {
	t.Run("keeps masked elements in order", func(t *testing.T) {
		s := seqkit.Range(0, 5)
		mask := seqkit.FromSlice([]bool{false, true, true, false, true})

		c, err := seqkit.Compress[int](s, mask)
		require.NoError(t, err)

		assert.Equal(t, 3, c.Len())
		assert.Equal(t, []int{1, 2, 4}, seqkit.Collect(c))

		v, ok := c.Get(2)
		assert.True(t, ok)
		assert.Equal(t, 4, v)

		_, ok = c.Get(3)
		assert.False(t, ok)
	})

	t.Run("all-false mask yields empty", func(t *testing.T) {
		c, err := seqkit.Compress[int](seqkit.Range(0, 3), seqkit.FromSlice([]bool{false, false, false}))
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("rejects mismatched mask length at construction", func(t *testing.T) {
		s := seqkit.Range(0, 5)

		_, err := seqkit.Compress[int](s, seqkit.FromSlice([]bool{false, false, true}))
		assert.ErrorIs(t, err, seqkit.ErrLengthMismatch)

		_, err = seqkit.Compress[int](s, seqkit.FromSlice(make([]bool, 6)))
		assert.ErrorIs(t, err, seqkit.ErrLengthMismatch)
	})
}
