package seqkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/seqkit"
)

func TestMap(t *testing.T) {
	t.Run("applies transform on access", func(t *testing.T) {
		s := seqkit.FromSlice([]int{4, 5, 6, 7})
		m := seqkit.Map(s, func(v int) int { return v + 2 })

		assert.Equal(t, []int{6, 7, 8, 9}, seqkit.Collect(m))

		v, ok := m.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("preserves length", func(t *testing.T) {
		s := seqkit.Range(0, 10)
		m := seqkit.Map(s, func(v int) int { return -v })
		assert.Equal(t, s.Len(), m.Len())

		empty := seqkit.Map(seqkit.FromSlice([]int{}), func(v int) int { return v })
		assert.Equal(t, 0, empty.Len())
	})

	t.Run("walk then apply equals apply then walk", func(t *testing.T) {
		s := seqkit.FromSlice([]int{3, 1, 4, 1, 5})
		f := func(v int) int { return v * 10 }

		var want []int
		for _, v := range seqkit.Collect[int](s) {
			want = append(want, f(v))
		}
		assert.Equal(t, want, seqkit.Collect(seqkit.Map(s, f)))
	})

	t.Run("changes element type", func(t *testing.T) {
		s := seqkit.FromSlice([]int{1, 2})
		m := seqkit.Map(s, func(v int) bool { return v%2 == 0 })

		assert.Equal(t, []bool{false, true}, seqkit.Collect(m))
	})

	t.Run("out of range signals absence", func(t *testing.T) {
		calls := 0
		m := seqkit.Map(seqkit.FromSlice([]int{1}), func(v int) int {
			calls++
			return v
		})

		_, ok := m.Get(5)
		assert.False(t, ok)
		assert.Equal(t, 0, calls, "transform must not run for absent positions")
	})

	t.Run("transform is lazy and per access", func(t *testing.T) {
		calls := 0
		m := seqkit.Map(seqkit.FromSlice([]int{1, 2, 3}), func(v int) int {
			calls++
			return v
		})

		assert.Equal(t, 0, calls)
		m.Get(0)
		m.Get(0)
		assert.Equal(t, 2, calls)
	})

	t.Run("result is read-only", func(t *testing.T) {
		s := seqkit.FromSlice([]int{1, 2, 3})
		m := seqkit.Map(s, func(v int) int { return v })

		_, mutable := m.(seqkit.MutSequence[int])
		assert.False(t, mutable, "a mapped view must not expose writes")
	})
}
