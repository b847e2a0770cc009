package lists

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SNode is a node of a SinglyLinkedList. The list owns the node; the payload
// is owned by the caller unless the list was built WithDestroy.
type SNode[T any] struct {
	next *SNode[T]
	list *SinglyLinkedList[T]
	val  T
}

// Value returns the node payload. The head sentinel holds the zero value.
func (n *SNode[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.val
}

// Next returns the following node, or nil past the tail.
func (n *SNode[T]) Next() *SNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// SinglyLinkedList is a one-directional chain behind a head sentinel.
// The sentinel is never counted and never removed; passing it as the anchor
// of InsertNext / RemoveNext addresses the front of the list.
type SinglyLinkedList[T any] struct {
	head    *SNode[T]
	tail    *SNode[T] // last real node, or head when empty
	size    int
	destroy DestroyFunc[T]
	diag    diagnostics
}

func NewSinglyLinkedList[T any](opts ...Option[T]) *SinglyLinkedList[T] {
	cfg := newConfig(opts)
	l := &SinglyLinkedList[T]{
		destroy: cfg.destroy,
		diag:    diagnostics{log: cfg.log, container: "singly_linked_list"},
	}
	l.reset()
	return l
}

func (l *SinglyLinkedList[T]) reset() {
	l.head = &SNode[T]{list: l}
	l.tail = l.head
	l.size = 0
}

// checkAnchor validates a node passed as an insertion/removal anchor.
func (l *SinglyLinkedList[T]) checkAnchor(op string, n *SNode[T]) error {
	if n == nil {
		return l.diag.misuse(op, ErrNilNode, nil)
	}
	if n.list != l {
		return l.diag.misuse(op, ErrForeignNode, nil)
	}
	return nil
}

// InsertNext inserts data right after previous and returns the new node.
// Use Head() as previous to prepend.
func (l *SinglyLinkedList[T]) InsertNext(previous *SNode[T], data T) (*SNode[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	if err := l.checkAnchor("insert_next", previous); err != nil {
		return nil, err
	}

	newNode := &SNode[T]{val: data, next: previous.next, list: l}
	previous.next = newNode
	if newNode.next == nil {
		l.tail = newNode
	}
	l.size++
	return newNode, nil
}

// Append inserts data after the tail.
func (l *SinglyLinkedList[T]) Append(data T) (*SNode[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	return l.InsertNext(l.tail, data)
}

// unlinkNext detaches the node after previous. Bounds checking should be done
// by the caller.
func (l *SinglyLinkedList[T]) unlinkNext(previous *SNode[T]) *SNode[T] {
	old := previous.next
	previous.next = old.next
	if previous.next == nil {
		l.tail = previous
	}
	l.size--
	old.next = nil
	old.list = nil
	return old
}

func (l *SinglyLinkedList[T]) checkRemoval(op string, previous *SNode[T]) error {
	if l == nil {
		return ErrNilList
	}
	if err := l.checkAnchor(op, previous); err != nil {
		return err
	}
	if previous.next == nil {
		if l.size == 0 {
			return l.diag.misuse(op, ErrEmpty, nil)
		}
		err := errors.Wrapf(ErrNoNext, "anchor is the tail of %d nodes", l.size)
		return l.diag.misuse(op, err, logrus.Fields{"size": l.size})
	}
	return nil
}

// RemoveNext removes the node after previous and destroys its payload if the
// list owns payloads. It fails with ErrNoNext when previous is the tail.
func (l *SinglyLinkedList[T]) RemoveNext(previous *SNode[T]) error {
	if err := l.checkRemoval("remove_next", previous); err != nil {
		return err
	}
	old := l.unlinkNext(previous)
	if l.destroy != nil {
		l.destroy(old.val)
	}
	var zero T
	old.val = zero
	return nil
}

// TakeNext removes the node after previous and hands its payload back to the
// caller. The destroy capability is not invoked.
func (l *SinglyLinkedList[T]) TakeNext(previous *SNode[T]) (T, error) {
	var zero T
	if err := l.checkRemoval("take_next", previous); err != nil {
		return zero, err
	}
	old := l.unlinkNext(previous)
	val := old.val
	old.val = zero
	return val, nil
}

// Search finds the first node whose payload equals x and returns the node
// BEFORE it, ready to be passed to RemoveNext or InsertNext. When the match is
// the first element the head sentinel is returned.
func (l *SinglyLinkedList[T]) Search(compare CompareFunc[T], x T) (*SNode[T], bool) {
	if l == nil {
		return nil, false
	}
	if compare == nil {
		l.diag.misuse("search", ErrNilCompare, nil)
		return nil, false
	}
	for tracer := l.head; tracer.next != nil; tracer = tracer.next {
		if compare(tracer.next.val, x) == 0 {
			return tracer, true
		}
	}
	return nil, false
}

// adopt moves every node of other into l and leaves other empty.
// It returns the first node and the tail of other's former chain.
func (l *SinglyLinkedList[T]) adopt(other *SinglyLinkedList[T]) (first, last *SNode[T], n int) {
	first, last, n = other.head.next, other.tail, other.size
	for node := first; node != nil; node = node.next {
		node.list = l
	}
	other.head.next = nil
	other.tail = other.head
	other.size = 0
	return first, last, n
}

func (l *SinglyLinkedList[T]) checkMerge(op string, other *SinglyLinkedList[T]) error {
	if l == nil || other == nil {
		return ErrNilList
	}
	if l == other {
		return l.diag.misuse(op, ErrSameList, nil)
	}
	return nil
}

// Merge splices every node of other onto the end of l and adopts destroy as
// the payload capability of the combined list.
//
// Merge runs in O(len(other)): the chain itself is relinked in O(1), but each
// moved node is re-tagged as belonging to l so that its handle stays a valid
// anchor. other is left empty and usable.
func (l *SinglyLinkedList[T]) Merge(other *SinglyLinkedList[T], destroy DestroyFunc[T]) error {
	if err := l.checkMerge("merge", other); err != nil {
		return err
	}

	first, last, n := l.adopt(other)
	if first != nil {
		l.tail.next = first
		l.tail = last
	}
	l.size += n
	l.destroy = destroy
	return nil
}

// MergeSorted merges other into l, both sorted under compare, reusing the
// existing nodes. On equal keys the node from l comes first.
// other is left empty.
func (l *SinglyLinkedList[T]) MergeSorted(other *SinglyLinkedList[T], destroy DestroyFunc[T], compare CompareFunc[T]) error {
	if err := l.checkMerge("merge_sorted", other); err != nil {
		return err
	}
	if compare == nil {
		return l.diag.misuse("merge_sorted", ErrNilCompare, nil)
	}

	first, last, n := l.adopt(other)
	l.destroy = destroy
	if n == 0 {
		return nil
	}
	if l.size == 0 {
		l.head.next, l.tail, l.size = first, last, n
		return nil
	}

	head, tail := mergeChains(l.head.next, l.tail, first, last, compare)
	l.head.next = head
	l.tail = tail
	l.size += n
	return nil
}

// mergeChains merges two non-empty nil-terminated chains.
// Ties are taken from a, which keeps the merge stable.
func mergeChains[T any](a, aTail, b, bTail *SNode[T], compare CompareFunc[T]) (head, tail *SNode[T]) {
	dummy := &SNode[T]{}
	tail = dummy

	for a != nil && b != nil {
		if compare(a.val, b.val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
		tail = aTail
	} else if b != nil {
		tail.next = b
		tail = bTail
	}
	return dummy.next, tail
}

// Reverse reverses the node order in place.
func (l *SinglyLinkedList[T]) Reverse() {
	if l == nil || l.size < 2 {
		return
	}

	var prev *SNode[T]
	current := l.head.next
	l.tail = current
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	l.head.next = prev
}

// Terminate removes every node, destroying payloads if the list owns them.
// The list is left empty and usable.
func (l *SinglyLinkedList[T]) Terminate() {
	if l == nil {
		return
	}
	var zero T
	for l.head.next != nil {
		old := l.unlinkNext(l.head)
		if l.destroy != nil {
			l.destroy(old.val)
		}
		old.val = zero
	}
}

// Head returns the sentinel. It carries no payload.
func (l *SinglyLinkedList[T]) Head() *SNode[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns the last node, or the sentinel when the list is empty.
func (l *SinglyLinkedList[T]) Tail() *SNode[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Front returns the first real node, or nil when the list is empty.
func (l *SinglyLinkedList[T]) Front() *SNode[T] {
	if l == nil {
		return nil
	}
	return l.head.next
}

func (l *SinglyLinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *SinglyLinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for current := l.head.next; current != nil; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (l *SinglyLinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		index := 0
		for current := l.head.next; current != nil; current = current.next {
			if !yield(index, current.val) {
				return
			}
			index++
		}
	}
}

func (l *SinglyLinkedList[T]) String() string {
	if l == nil {
		return "[]"
	}
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for current := l.head.next; current != nil; current = current.next {
		strBuilder.WriteString(fmt.Sprintf("%v", current.val))
		if current.next != nil {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
