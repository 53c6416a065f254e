package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	t.Run("empty queue pops nothing", func(t *testing.T) {
		var q FIFO[int]
		_, ok := q.Pop()
		assert.False(t, ok)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("preserves order", func(t *testing.T) {
		var q FIFO[string]
		q.Push("a")
		q.Push("b")
		q.Push("c")
		require.Equal(t, 3, q.Len())

		for _, want := range []string{"a", "b", "c"} {
			got, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
		assert.Equal(t, 0, q.Len())
	})

	t.Run("interleaved push and pop across compaction", func(t *testing.T) {
		var q FIFO[int]
		var pushed, popped []int
		for i := range 1000 {
			q.Push(i)
			q.Push(i + 1000)
			pushed = append(pushed, i, i+1000)
			v, ok := q.Pop()
			require.True(t, ok)
			popped = append(popped, v)
		}
		assert.Equal(t, 1000, q.Len())

		var peeked []int
		q.Each(func(v int) bool {
			peeked = append(peeked, v)
			return true
		})
		assert.Equal(t, pushed[1000:], peeked)

		for q.Len() > 0 {
			v, _ := q.Pop()
			popped = append(popped, v)
		}
		assert.Equal(t, pushed, popped)
	})

	t.Run("each stops early", func(t *testing.T) {
		var q FIFO[int]
		for i := range 5 {
			q.Push(i)
		}
		var seen []int
		q.Each(func(v int) bool {
			seen = append(seen, v)
			return v < 2
		})
		assert.Equal(t, []int{0, 1, 2}, seen)
		assert.Equal(t, 5, q.Len())
	})
}
