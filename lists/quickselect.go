package lists

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// QuickselectFunc returns the element that would sit at index n (0-based) if
// the array were sorted by compare, without sorting it.
//
// The array is left untouched: partitioning runs on a scratch copy of the
// live elements. Expected time is O(n); the worst case is O(n^2).
func (da *DynamicArray[T]) QuickselectFunc(n int, compare CompareFunc[T]) (T, error) {
	var zero T
	if da == nil {
		return zero, ErrNilList
	}
	if compare == nil {
		return zero, da.diag.misuse("quickselect", ErrNilCompare, nil)
	}
	if n < 0 || n >= da.count {
		err := errors.Wrapf(ErrIndexOutOfBounds, "rank %d, len %d", n, da.count)
		return zero, da.diag.misuse("quickselect", err, logrus.Fields{"rank": n})
	}

	scratch := slices.Clone(da.buf[:da.count])
	return scratch[selectRank(scratch, n, compare)], nil
}

// Quickselect is QuickselectFunc with the natural order of T.
func Quickselect[T cmp.Ordered](da *DynamicArray[T], n int) (T, error) {
	return da.QuickselectFunc(n, cmp.Compare[T])
}

// selectRank rearranges data so that data[n] holds the rank-n element and
// returns n. Only the side containing n is visited after each partition.
func selectRank[T any](data []T, n int, compare CompareFunc[T]) int {
	lo, hi := 0, len(data)-1
	for lo < hi {
		pivot := lo + rand.IntN(hi-lo+1)
		lt, gt := partition3(data, lo, hi, pivot, compare)
		switch {
		case n < lt:
			hi = lt - 1
		case n > gt:
			lo = gt + 1
		default:
			return n
		}
	}
	return n
}

// partition3 splits data[lo..hi] around data[pivot] into
// [lo, lt) < pivot, [lt, gt] == pivot, (gt, hi] > pivot.
func partition3[T any](data []T, lo, hi, pivot int, compare CompareFunc[T]) (lt, gt int) {
	p := data[pivot]
	lt, gt = lo, hi
	i := lo
	for i <= gt {
		switch c := compare(data[i], p); {
		case c < 0:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case c > 0:
			data[i], data[gt] = data[gt], data[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}
