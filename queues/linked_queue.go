package queues

import "chainkit/lists"

// LinkedQueue is a FIFO queue over a singly linked list: values enter at the
// tail and leave right after the head sentinel, both O(1).
//
// Dequeued values are handed back to the caller; the destroy capability given
// through lists.WithDestroy only runs on Clear.
type LinkedQueue[T any] struct {
	list *lists.SinglyLinkedList[T]
}

var _ Queue[int] = (*LinkedQueue[int])(nil)

func NewLinkedQueue[T any](opts ...lists.Option[T]) *LinkedQueue[T] {
	return &LinkedQueue[T]{list: lists.NewSinglyLinkedList(opts...)}
}

func (q *LinkedQueue[T]) Enqueue(value T) {
	// Append only fails on a nil list or a foreign anchor, neither can happen here
	_, _ = q.list.Append(value)
}

func (q *LinkedQueue[T]) EnqueueAll(values ...T) {
	for _, v := range values {
		q.Enqueue(v)
	}
}

func (q *LinkedQueue[T]) Dequeue() (value T, ok bool) {
	if q.list.IsEmpty() {
		return value, false
	}
	value, err := q.list.TakeNext(q.list.Head())
	return value, err == nil
}

func (q *LinkedQueue[T]) DequeueBatchInto(dst []T) int {
	n := 0
	for n < len(dst) {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}

func (q *LinkedQueue[T]) Peek() (value T, ok bool) {
	front := q.list.Front()
	if front == nil {
		return value, false
	}
	return front.Value(), true
}

// Back returns the most recently enqueued value.
func (q *LinkedQueue[T]) Back() (value T, ok bool) {
	if q.list.IsEmpty() {
		return value, false
	}
	return q.list.Tail().Value(), true
}

func (q *LinkedQueue[T]) Size() int {
	return q.list.Len()
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Clear drops every queued value, destroying them if the queue owns payloads.
func (q *LinkedQueue[T]) Clear() {
	q.list.Terminate()
}

func (q *LinkedQueue[T]) String() string {
	return q.list.String()
}
