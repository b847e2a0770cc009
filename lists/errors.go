package lists

import "errors"

// Every message is prefixed with "lists: " so diagnostics are easy to grep.
// Operations wrap these with github.com/pkg/errors to add context (index, op);
// callers match with errors.Is.
var (
	// ErrIndexOutOfBounds is returned when an index falls outside the live range.
	ErrIndexOutOfBounds = errors.New("lists: index out of bounds")

	// ErrAllocationFailed is the fatal class: a buffer or node could not be
	// allocated. The container is left exactly as it was before the call.
	ErrAllocationFailed = errors.New("lists: allocation failed")

	// ErrEmpty is returned by removals on a container with no elements.
	ErrEmpty = errors.New("lists: container is empty")

	// ErrNilList is returned when a method is called on a nil container.
	ErrNilList = errors.New("lists: nil list")

	// ErrNilNode is returned when a nil node handle is passed as an anchor.
	ErrNilNode = errors.New("lists: nil node")

	// ErrForeignNode is returned when a node handle does not belong to the list.
	ErrForeignNode = errors.New("lists: node does not belong to this list")

	// ErrNoNext is returned by RemoveNext when the anchor is the last node.
	ErrNoNext = errors.New("lists: no node after anchor")

	// ErrSentinelRemoval is returned when a removal would unlink the head sentinel.
	ErrSentinelRemoval = errors.New("lists: attempt to remove the head sentinel")

	// ErrNilCompare is returned when a comparator is required but nil.
	ErrNilCompare = errors.New("lists: nil compare function")

	// ErrSingleNode is reported when rotating a list that holds one node.
	ErrSingleNode = errors.New("lists: list has just one node")

	// ErrSameList is returned when a list is merged into itself.
	ErrSameList = errors.New("lists: cannot merge a list with itself")
)
