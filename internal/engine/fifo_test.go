package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanQueue_FIFOOrder(t *testing.T) {
	q := newSpanQueue(2)
	q.push(span{0, 1})
	q.push(span{0, 0.5})
	q.push(span{0.5, 1})

	assert.Equal(t, 3, q.len())
	assert.Equal(t, span{0, 1}, q.pop())
	assert.Equal(t, span{0, 0.5}, q.pop())
	assert.Equal(t, span{0.5, 1}, q.pop())
	assert.Equal(t, 0, q.len())
}

func TestSpanQueue_GrowsAcrossWrap(t *testing.T) {
	q := newSpanQueue(2)
	q.push(span{0, 1})
	q.push(span{1, 2})
	assert.Equal(t, span{0, 1}, q.pop())

	// writePos has wrapped; growing must preserve order.
	q.push(span{2, 3})
	q.push(span{3, 4})
	q.push(span{4, 5})

	assert.Equal(t, span{1, 2}, q.pop())
	assert.Equal(t, span{2, 3}, q.pop())
	assert.Equal(t, span{3, 4}, q.pop())
	assert.Equal(t, span{4, 5}, q.pop())
}

func TestSpanQueue_BisectionPattern(t *testing.T) {
	// The consumption pattern of up-sampling: pop one, push two halves.
	// FIFO order guarantees the widest remaining interval is always next.
	q := newSpanQueue(1)
	q.push(span{0, 1})
	for i := 0; i < 7; i++ {
		s := q.pop()
		mid := (s.begin + s.end) / 2
		q.push(span{s.begin, mid})
		q.push(span{mid, s.end})
	}

	widest := 1.0
	for q.len() > 0 {
		s := q.pop()
		width := s.end - s.begin
		assert.LessOrEqual(t, width, widest)
		widest = width
	}
}
