package queues

import "chainkit/lists"

// LinkedStack is a LIFO stack whose top is the first node after the head
// sentinel of a singly linked list.
type LinkedStack[T any] struct {
	list *lists.SinglyLinkedList[T]
}

var _ Stack[int] = (*LinkedStack[int])(nil)

func NewLinkedStack[T any](opts ...lists.Option[T]) *LinkedStack[T] {
	return &LinkedStack[T]{list: lists.NewSinglyLinkedList(opts...)}
}

func (s *LinkedStack[T]) Push(value T) {
	_, _ = s.list.InsertNext(s.list.Head(), value)
}

// Pop removes the top value and hands it back without destroying it.
func (s *LinkedStack[T]) Pop() (value T, ok bool) {
	if s.list.IsEmpty() {
		return value, false
	}
	value, err := s.list.TakeNext(s.list.Head())
	return value, err == nil
}

func (s *LinkedStack[T]) Peek() (value T, ok bool) {
	top := s.list.Front()
	if top == nil {
		return value, false
	}
	return top.Value(), true
}

// Bottom returns the oldest value on the stack.
func (s *LinkedStack[T]) Bottom() (value T, ok bool) {
	if s.list.IsEmpty() {
		return value, false
	}
	return s.list.Tail().Value(), true
}

func (s *LinkedStack[T]) Size() int {
	return s.list.Len()
}

func (s *LinkedStack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// Clear drops every value, destroying them if the stack owns payloads.
func (s *LinkedStack[T]) Clear() {
	s.list.Terminate()
}

func (s *LinkedStack[T]) String() string {
	return s.list.String()
}
