package engine

// span is a parameter sub-interval of one piece awaiting bisection.
type span struct {
	begin, end float64
}

// spanQueue is a growable circular FIFO of parameter spans. Consuming spans
// in insertion order means every bisection within a piece operates on the
// largest remaining sub-interval. The queue is owned by a single pass and
// needs no locking.
type spanQueue struct {
	data     []span
	size     int
	readPos  int
	writePos int
}

func newSpanQueue(capacity int) *spanQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &spanQueue{data: make([]span, capacity)}
}

// push appends a span, growing the backing ring when full.
func (q *spanQueue) push(s span) {
	if q.size == len(q.data) {
		q.grow(q.size + 1)
	}
	q.data[q.writePos] = s
	q.writePos = (q.writePos + 1) % len(q.data)
	q.size++
}

// pop removes and returns the oldest span. It must not be called on an empty
// queue; upsampling always pushes two halves for every span it pops.
func (q *spanQueue) pop() span {
	s := q.data[q.readPos]
	q.readPos = (q.readPos + 1) % len(q.data)
	q.size--
	return s
}

func (q *spanQueue) len() int {
	return q.size
}

// grow resizes the ring, compacting wrapped contents to the front.
func (q *spanQueue) grow(minCap int) {
	newCap := len(q.data) * 2
	if newCap < minCap {
		newCap = minCap
	}
	data := make([]span, newCap)
	for i := 0; i < q.size; i++ {
		data[i] = q.data[(q.readPos+i)%len(q.data)]
	}
	q.data = data
	q.readPos = 0
	q.writePos = q.size
}
