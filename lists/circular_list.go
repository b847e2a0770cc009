package lists

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DNode is a node of a CircularList.
type DNode[T any] struct {
	prev *DNode[T]
	next *DNode[T]
	list *CircularList[T]
	val  T
}

// Value returns the node payload. The head sentinel holds the zero value.
func (n *DNode[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.val
}

// Next returns the following node. The ring is closed, so walking forward
// eventually yields the head sentinel; see CircularList.IsHead.
func (n *DNode[T]) Next() *DNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Prev returns the preceding node, possibly the head sentinel.
func (n *DNode[T]) Prev() *DNode[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

// CircularList is a circular doubly linked list closed by a head sentinel:
// head.next is the front, head.prev is the back, and both directions always
// lead back to head.
type CircularList[T any] struct {
	head    *DNode[T]
	size    int
	destroy DestroyFunc[T]
	diag    diagnostics
}

func NewCircularList[T any](opts ...Option[T]) *CircularList[T] {
	cfg := newConfig(opts)
	l := &CircularList[T]{
		destroy: cfg.destroy,
		diag:    diagnostics{log: cfg.log, container: "circular_list"},
	}
	l.head = &DNode[T]{list: l}
	l.head.prev = l.head
	l.head.next = l.head
	return l
}

func (l *CircularList[T]) checkAnchor(op string, n *DNode[T]) error {
	if n == nil {
		return l.diag.misuse(op, ErrNilNode, nil)
	}
	if n.list != l {
		return l.diag.misuse(op, ErrForeignNode, nil)
	}
	return nil
}

// splice links newNode between prev and prev.next.
func (l *CircularList[T]) splice(prev, newNode *DNode[T]) {
	newNode.prev = prev
	newNode.next = prev.next
	prev.next.prev = newNode
	prev.next = newNode
	l.size++
}

// unlink removes node from the ring and clears its links.
// Bounds checking should be done by the caller.
func (l *CircularList[T]) unlink(node *DNode[T]) {
	node.prev.next = node.next
	node.next.prev = node.prev
	node.prev = nil
	node.next = nil
	node.list = nil
	l.size--
}

// InsertNext inserts data right after prev. Passing Head() inserts at the front.
func (l *CircularList[T]) InsertNext(prev *DNode[T], data T) (*DNode[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	if err := l.checkAnchor("insert_next", prev); err != nil {
		return nil, err
	}
	newNode := &DNode[T]{val: data, list: l}
	l.splice(prev, newNode)
	return newNode, nil
}

// InsertPrev inserts data right before next. Passing Head() inserts at the back.
func (l *CircularList[T]) InsertPrev(next *DNode[T], data T) (*DNode[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	if err := l.checkAnchor("insert_prev", next); err != nil {
		return nil, err
	}
	newNode := &DNode[T]{val: data, list: l}
	l.splice(next.prev, newNode)
	return newNode, nil
}

// PushBack appends data at the back of the ring.
func (l *CircularList[T]) PushBack(data T) (*DNode[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	return l.InsertPrev(l.head, data)
}

// checkRemoval validates that target, reached from anchor, may be removed.
func (l *CircularList[T]) checkRemoval(op string, anchor *DNode[T], target func(*DNode[T]) *DNode[T]) error {
	if l == nil {
		return ErrNilList
	}
	if err := l.checkAnchor(op, anchor); err != nil {
		return err
	}
	if l.size == 0 {
		return l.diag.misuse(op, ErrEmpty, nil)
	}
	if target(anchor) == l.head {
		err := errors.Wrapf(ErrSentinelRemoval, "%d nodes", l.size)
		return l.diag.misuse(op, err, logrus.Fields{"size": l.size})
	}
	return nil
}

func (l *CircularList[T]) remove(node *DNode[T]) {
	l.unlink(node)
	if l.destroy != nil {
		l.destroy(node.val)
	}
	var zero T
	node.val = zero
}

// RemoveNext removes the node after prev and destroys its payload if the list
// owns payloads. Removing the head sentinel is rejected.
func (l *CircularList[T]) RemoveNext(prev *DNode[T]) error {
	if err := l.checkRemoval("remove_next", prev, (*DNode[T]).Next); err != nil {
		return err
	}
	l.remove(prev.next)
	return nil
}

// RemovePrev removes the node before next and destroys its payload if the list
// owns payloads. Removing the head sentinel is rejected.
func (l *CircularList[T]) RemovePrev(next *DNode[T]) error {
	if err := l.checkRemoval("remove_prev", next, (*DNode[T]).Prev); err != nil {
		return err
	}
	l.remove(next.prev)
	return nil
}

// Search returns the first non-sentinel node whose payload equals x.
func (l *CircularList[T]) Search(x T, compare CompareFunc[T]) (*DNode[T], bool) {
	if l == nil {
		return nil, false
	}
	if compare == nil {
		l.diag.misuse("search", ErrNilCompare, nil)
		return nil, false
	}
	for walker := l.head.next; walker != l.head; walker = walker.next {
		if compare(walker.val, x) == 0 {
			return walker, true
		}
	}
	return nil, false
}

// Rotate moves the head sentinel i positions forward, so that the node at
// position i mod Len() becomes the front. Negative i rotates backwards.
// Only the sentinel is relinked; no payload moves.
// Rotating an empty or single-node list changes nothing and is reported to
// the logger.
func (l *CircularList[T]) Rotate(i int) {
	if l == nil {
		return
	}
	switch l.size {
	case 0:
		l.diag.misuse("rotate", ErrEmpty, logrus.Fields{"shift": i})
		return
	case 1:
		l.diag.misuse("rotate", ErrSingleNode, logrus.Fields{"shift": i})
		return
	}
	jumps := ((i % l.size) + l.size) % l.size
	if jumps == 0 {
		return
	}

	head := l.head
	pt := head.next
	for range jumps {
		pt = pt.next
	}

	// close the ring over the sentinel: back <-> front
	head.prev.next = head.next
	head.next.prev = head.prev

	// re-open it right before pt
	head.next = pt
	head.prev = pt.prev
	pt.prev.next = head
	pt.prev = head
}

// Terminate removes every node, destroying payloads if the list owns them.
// The list is left empty and usable.
func (l *CircularList[T]) Terminate() {
	if l == nil {
		return
	}
	for l.size > 0 {
		l.remove(l.head.next)
	}
}

// Head returns the sentinel. It carries no payload.
func (l *CircularList[T]) Head() *DNode[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// IsHead reports whether n is the sentinel of l.
func (l *CircularList[T]) IsHead(n *DNode[T]) bool {
	return l != nil && n != nil && n == l.head
}

// Front returns the first real node, or nil when the list is empty.
func (l *CircularList[T]) Front() *DNode[T] {
	if l.Len() == 0 {
		return nil
	}
	return l.head.next
}

// Back returns the last real node, or nil when the list is empty.
func (l *CircularList[T]) Back() *DNode[T] {
	if l.Len() == 0 {
		return nil
	}
	return l.head.prev
}

func (l *CircularList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *CircularList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *CircularList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for current := l.head.next; current != l.head; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (l *CircularList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		index := l.size - 1
		for current := l.head.prev; current != l.head; current = current.prev {
			if !yield(index, current.val) {
				return
			}
			index--
		}
	}
}

func (l *CircularList[T]) String() string {
	if l == nil {
		return "[]"
	}
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for current := l.head.next; current != l.head; current = current.next {
		strBuilder.WriteString(fmt.Sprintf("%v", current.val))
		if current.next != l.head {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
