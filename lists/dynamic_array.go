package lists

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DynamicArray is a contiguous, index-addressed array whose capacity is managed
// explicitly. Elements are stored by value; if T holds pointers the array only
// releases what they point to through the destroy capability.
//
// The backing slice always has len == capacity. Slots [Len(), Cap()) hold the
// zero value of T.
type DynamicArray[T any] struct {
	buf      []T
	count    int
	elemSize uintptr
	maxCap   int
	destroy  DestroyFunc[T]
	diag     diagnostics
}

// NewDynamicArray creates an array with room for initCapacity elements.
// A non-positive initCapacity falls back to a capacity of 10.
func NewDynamicArray[T any](initCapacity int, opts ...Option[T]) (*DynamicArray[T], error) {
	cfg := newConfig(opts)
	da := &DynamicArray[T]{
		elemSize: unsafe.Sizeof(*new(T)),
		maxCap:   cfg.maxCap,
		destroy:  cfg.destroy,
		diag:     diagnostics{log: cfg.log, container: "dynamic_array"},
	}

	if initCapacity <= 0 {
		initCapacity = defaultCapacity
	}
	if da.maxCap > 0 && initCapacity > da.maxCap {
		err := errors.Wrapf(ErrAllocationFailed, "initial capacity %d exceeds limit %d", initCapacity, da.maxCap)
		return nil, da.diag.fatal("init", err, logrus.Fields{"capacity": initCapacity})
	}

	buf, err := allocate[T](initCapacity)
	if err != nil {
		return nil, da.diag.fatal("init", err, logrus.Fields{"capacity": initCapacity})
	}
	da.buf = buf
	return da, nil
}

// allocate turns the runtime panic raised for impossible slice sizes into
// ErrAllocationFailed.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Wrapf(ErrAllocationFailed, "%d slots: %v", n, r)
		}
	}()
	return make([]T, n), nil
}

// Reallocate grows the buffer to newCapacity slots. It is a no-op when
// newCapacity does not exceed the current capacity. On failure the array is
// left untouched.
func (da *DynamicArray[T]) Reallocate(newCapacity int) error {
	if da == nil {
		return ErrNilList
	}
	if newCapacity <= len(da.buf) {
		return nil
	}
	if da.maxCap > 0 && newCapacity > da.maxCap {
		err := errors.Wrapf(ErrAllocationFailed, "capacity %d exceeds limit %d", newCapacity, da.maxCap)
		return da.diag.fatal("reallocate", err, logrus.Fields{"capacity": newCapacity})
	}

	newBuf, err := allocate[T](newCapacity)
	if err != nil {
		return da.diag.fatal("reallocate", err, logrus.Fields{"capacity": newCapacity})
	}
	// copy the whole old buffer, reserve included
	copy(newBuf, da.buf)
	clear(da.buf)
	da.buf = newBuf
	return nil
}

// grow makes room for at least minCap elements, doubling when possible.
func (da *DynamicArray[T]) grow(minCap int) error {
	newCap := max(2*len(da.buf), minCap)
	if da.maxCap > 0 && newCap > da.maxCap && minCap <= da.maxCap {
		newCap = da.maxCap
	}
	return da.Reallocate(newCap)
}

// InsertAt inserts data at index, shifting [index, Len()) one slot right.
// Valid indexes are 0 <= index <= Len().
func (da *DynamicArray[T]) InsertAt(index int, data T) error {
	if da == nil {
		return ErrNilList
	}
	if index < 0 || index > da.count {
		err := errors.Wrapf(ErrIndexOutOfBounds, "insert at %d, len %d", index, da.count)
		return da.diag.misuse("insert_at", err, logrus.Fields{"index": index})
	}

	if da.count == len(da.buf) {
		if err := da.grow(da.count + 1); err != nil {
			return err
		}
	}

	// copy treats overlapping regions correctly
	copy(da.buf[index+1:da.count+1], da.buf[index:da.count])
	da.buf[index] = data
	da.count++
	return nil
}

// Append adds data after the last element.
func (da *DynamicArray[T]) Append(data T) error {
	if da == nil {
		return ErrNilList
	}
	return da.InsertAt(da.count, data)
}

// SortedInsert keeps a sorted array sorted.
//
// It scans from the front while elements compare less than data. If an equal
// element is found, nothing is inserted and its index is returned so the
// caller can decide (InsertAt accepts duplicates). Otherwise data is inserted
// before the first greater element, or at the end, and -1 is returned.
func (da *DynamicArray[T]) SortedInsert(data T, compare CompareFunc[T]) (int, error) {
	if da == nil {
		return -1, ErrNilList
	}
	if compare == nil {
		return -1, da.diag.misuse("sorted_insert", ErrNilCompare, nil)
	}

	i := 0
	for ; i < da.count; i++ {
		c := compare(da.buf[i], data)
		if c == 0 {
			return i, nil
		}
		if c > 0 {
			break
		}
	}
	if err := da.InsertAt(i, data); err != nil {
		return -1, err
	}
	return -1, nil
}

// RemoveAt removes the element at index, calling destroy on it if set.
func (da *DynamicArray[T]) RemoveAt(index int) error {
	if da == nil {
		return ErrNilList
	}
	if index < 0 || index >= da.count {
		err := errors.Wrapf(ErrIndexOutOfBounds, "remove at %d, len %d", index, da.count)
		return da.diag.misuse("remove_at", err, logrus.Fields{"index": index})
	}

	if da.destroy != nil {
		da.destroy(da.buf[index])
	}
	copy(da.buf[index:], da.buf[index+1:da.count])
	da.count--
	// clear the vacated slot, let it be GCed
	clear(da.buf[da.count : da.count+1])
	return nil
}

// RemoveLast removes the last element.
func (da *DynamicArray[T]) RemoveLast() error {
	if da == nil {
		return ErrNilList
	}
	if da.count == 0 {
		return da.diag.misuse("remove_last", ErrEmpty, nil)
	}
	return da.RemoveAt(da.count - 1)
}

// Search returns a pointer to the first element equal to x under compare.
// The pointer is valid until the next mutation of the array.
func (da *DynamicArray[T]) Search(x T, compare CompareFunc[T]) (*T, bool) {
	i := da.IndexOf(x, compare)
	if i < 0 {
		return nil, false
	}
	return &da.buf[i], true
}

// IndexOf returns the index of the first element equal to x, or -1.
func (da *DynamicArray[T]) IndexOf(x T, compare CompareFunc[T]) int {
	if da == nil {
		return -1
	}
	if compare == nil {
		da.diag.misuse("search", ErrNilCompare, nil)
		return -1
	}
	for i := 0; i < da.count; i++ {
		if compare(da.buf[i], x) == 0 {
			return i
		}
	}
	return -1
}

// RemoveDuplicates collapses runs of equal elements in a sorted array, keeping
// the first element of each run. Discarded elements are destroyed.
// It returns the number of removed elements.
func (da *DynamicArray[T]) RemoveDuplicates(compare CompareFunc[T]) (int, error) {
	if da == nil {
		return 0, ErrNilList
	}
	if compare == nil {
		return 0, da.diag.misuse("remove_duplicates", ErrNilCompare, nil)
	}
	if da.count < 2 {
		return 0, nil
	}

	w := 0
	for r := 1; r < da.count; r++ {
		if compare(da.buf[w], da.buf[r]) == 0 {
			if da.destroy != nil {
				da.destroy(da.buf[r])
			}
			continue
		}
		w++
		da.buf[w] = da.buf[r]
	}

	newCount := w + 1
	removed := da.count - newCount
	clear(da.buf[newCount:da.count])
	da.count = newCount
	return removed, nil
}

// Get returns the element at index.
func (da *DynamicArray[T]) Get(index int) (T, error) {
	var zero T
	if da == nil {
		return zero, ErrNilList
	}
	if index < 0 || index >= da.count {
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "get %d, len %d", index, da.count)
	}
	return da.buf[index], nil
}

// Set overwrites the element at index. The previous value is not destroyed.
func (da *DynamicArray[T]) Set(index int, data T) error {
	if da == nil {
		return ErrNilList
	}
	if index < 0 || index >= da.count {
		return errors.Wrapf(ErrIndexOutOfBounds, "set %d, len %d", index, da.count)
	}
	da.buf[index] = data
	return nil
}

// Len returns the number of live elements.
func (da *DynamicArray[T]) Len() int {
	if da == nil {
		return 0
	}
	return da.count
}

// Cap returns the number of allocated slots.
func (da *DynamicArray[T]) Cap() int {
	if da == nil {
		return 0
	}
	return len(da.buf)
}

// ElemSize returns the size in bytes of one element.
func (da *DynamicArray[T]) ElemSize() uintptr {
	if da == nil {
		var zero T
		return unsafe.Sizeof(zero)
	}
	return da.elemSize
}

func (da *DynamicArray[T]) IsEmpty() bool {
	return da.Len() == 0
}

// Terminate destroys every live element and releases the buffer.
// The array stays usable and grows again on the next insert.
func (da *DynamicArray[T]) Terminate() {
	if da == nil {
		return
	}
	if da.destroy != nil {
		for i := 0; i < da.count; i++ {
			da.destroy(da.buf[i])
		}
	}
	clear(da.buf)
	da.buf = nil
	da.count = 0
}

// ToSlice returns a copy of the live elements.
func (da *DynamicArray[T]) ToSlice() []T {
	if da == nil {
		return nil
	}
	return slices.Clone(da.buf[:da.count])
}

func (da *DynamicArray[T]) Values() iter.Seq[T] {
	if da == nil {
		return func(func(T) bool) {}
	}
	return slices.Values(da.buf[:da.count])
}

func (da *DynamicArray[T]) All() iter.Seq2[int, T] {
	if da == nil {
		return func(func(int, T) bool) {}
	}
	return slices.All(da.buf[:da.count])
}

// String implements fmt.Stringer for easier debugging.
func (da *DynamicArray[T]) String() string {
	if da == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", da.buf[:da.count])
}
