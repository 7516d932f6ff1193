package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	// Peek at the head. Returns (zero, false) when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
