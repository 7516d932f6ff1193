package Queues

// ArrayQueue is a FIFO backed by a circular slice that grows by half when full.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{0, 0, 0, make([]T, initCap|1)}
}

func (q *ArrayQueue[T]) Empty() bool {
	return q.sz == 0
}

func (q *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.head < q.tail {
		copy(nc, q.content[q.head:q.tail])
	} else if q.sz > 0 {
		n := copy(nc, q.content[q.head:])
		copy(nc[n:], q.content[:q.tail])
	}
	q.content, q.head, q.tail = nc, 0, q.sz%newLen
}

// Shrink the backing slice to fit the current content.
func (q *ArrayQueue[T]) Shrink() {
	q.resize(q.sz | 1)
}

// Clear the queue. The backing slice is kept but zeroed so it doesn't retain references.
func (q *ArrayQueue[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

func (q *ArrayQueue[T]) Size() uint {
	return q.sz
}

func (q *ArrayQueue[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz + q.sz>>1 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *ArrayQueue[T]) Pop() (T, error) {
	if q.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return t, nil
}

func (q *ArrayQueue[T]) Peek() (T, bool) {
	if q.Empty() {
		return *new(T), false
	}
	return q.content[q.head], true
}
