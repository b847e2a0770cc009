package lists_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainkit/lists"
)

// newArray builds an int array holding vals.
func newArray(t *testing.T, capacity int, vals ...int) *lists.DynamicArray[int] {
	t.Helper()
	da, err := lists.NewDynamicArray[int](capacity)
	require.NoError(t, err)
	for _, v := range vals {
		require.NoError(t, da.Append(v))
	}
	return da
}

// recorder collects destroyed payloads.
type recorder[T any] struct {
	got []T
}

func (r *recorder[T]) destroy(v T) {
	r.got = append(r.got, v)
}

func TestNewDynamicArray_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		initCap int
		wantCap int
	}{
		{"Negative capacity", -3, 10},
		{"Zero capacity", 0, 10},
		{"Capacity 1", 1, 1},
		{"Capacity 64", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			da, err := lists.NewDynamicArray[int](tt.initCap)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, da.Cap())
			assert.Equal(t, 0, da.Len())
			assert.True(t, da.IsEmpty())
		})
	}
}

func TestDynamicArray_ElemSize(t *testing.T) {
	da, err := lists.NewDynamicArray[int32](2)
	require.NoError(t, err)
	assert.Equal(t, uintptr(4), da.ElemSize())
}

// Capacity 2, 4-byte ints: appending three values reallocates once.
func TestDynamicArray_AppendGrowSearchRemove(t *testing.T) {
	da, err := lists.NewDynamicArray[int32](2)
	require.NoError(t, err)

	for _, v := range []int32{1, 2, 3} {
		require.NoError(t, da.Append(v))
	}
	assert.Equal(t, 3, da.Len())
	assert.GreaterOrEqual(t, da.Cap(), 3)

	slot, ok := da.Search(2, lists.Ordered[int32]())
	require.True(t, ok)
	assert.Equal(t, int32(2), *slot)
	assert.Equal(t, 1, da.IndexOf(2, lists.Ordered[int32]()))

	require.NoError(t, da.RemoveAt(0))
	assert.Equal(t, []int32{2, 3}, da.ToSlice())
}

func TestDynamicArray_InsertAt(t *testing.T) {
	da := newArray(t, 2, 1, 2, 3)

	require.NoError(t, da.InsertAt(1, 10))
	assert.Equal(t, []int{1, 10, 2, 3}, da.ToSlice())

	require.NoError(t, da.InsertAt(0, 0))
	require.NoError(t, da.InsertAt(da.Len(), 99))
	assert.Equal(t, []int{0, 1, 10, 2, 3, 99}, da.ToSlice())

	for _, idx := range []int{-1, da.Len() + 1} {
		err := da.InsertAt(idx, 7)
		assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds, "index %d", idx)
	}
	assert.Equal(t, 6, da.Len(), "rejected inserts must not change the array")
}

func TestDynamicArray_InsertRemoveRoundTrip(t *testing.T) {
	base := []int{5, 6, 7, 8, 9}
	for idx := 0; idx <= len(base); idx++ {
		da := newArray(t, 0, base...)

		require.NoError(t, da.InsertAt(idx, 100))
		require.Equal(t, len(base)+1, da.Len())
		require.NoError(t, da.RemoveAt(idx))

		assert.Equal(t, base, da.ToSlice(), "round trip at %d", idx)
	}
}

func TestDynamicArray_RemoveAt(t *testing.T) {
	rec := &recorder[int]{}
	da, err := lists.NewDynamicArray[int](4, lists.WithDestroy[int](rec.destroy))
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, da.Append(v))
	}

	require.NoError(t, da.RemoveAt(1))
	assert.Equal(t, []int{1, 3}, da.ToSlice())
	assert.Equal(t, []int{2}, rec.got)

	assert.ErrorIs(t, da.RemoveAt(2), lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, da.RemoveAt(-1), lists.ErrIndexOutOfBounds)

	require.NoError(t, da.RemoveLast())
	require.NoError(t, da.RemoveLast())
	assert.ErrorIs(t, da.RemoveLast(), lists.ErrEmpty)
	assert.Equal(t, []int{2, 3, 1}, rec.got)
}

func TestDynamicArray_SortedInsert(t *testing.T) {
	compare := lists.Ordered[int]()
	da := newArray(t, 0, 1, 3, 5)

	idx, err := da.SortedInsert(4, compare)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Equal(t, []int{1, 3, 4, 5}, da.ToSlice())

	idx, err = da.SortedInsert(3, compare)
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "equal key must report its index")
	assert.Equal(t, []int{1, 3, 4, 5}, da.ToSlice(), "equal key must not be inserted")

	idx, err = da.SortedInsert(0, compare)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	idx, err = da.SortedInsert(9, compare)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 9}, da.ToSlice())

	// duplicates are still possible through InsertAt
	require.NoError(t, da.InsertAt(2, 3))
	assert.Equal(t, []int{0, 1, 3, 3, 4, 5, 9}, da.ToSlice())

	_, err = da.SortedInsert(2, nil)
	assert.ErrorIs(t, err, lists.ErrNilCompare)
}

func TestDynamicArray_SortedInsertKeepsOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	compare := lists.Ordered[int]()
	da := newArray(t, 1)

	seen := map[int]bool{}
	for range 200 {
		v := r.IntN(50)
		idx, err := da.SortedInsert(v, compare)
		require.NoError(t, err)
		if seen[v] {
			require.NotEqual(t, -1, idx)
			require.Equal(t, v, mustGet(t, da, idx))
		} else {
			require.Equal(t, -1, idx)
		}
		seen[v] = true
	}

	got := da.ToSlice()
	assert.True(t, slices.IsSorted(got))
	assert.Equal(t, len(seen), len(got))
}

func mustGet(t *testing.T, da *lists.DynamicArray[int], i int) int {
	t.Helper()
	v, err := da.Get(i)
	require.NoError(t, err)
	return v
}

func TestDynamicArray_RemoveDuplicates(t *testing.T) {
	rec := &recorder[int]{}
	da, err := lists.NewDynamicArray[int](0, lists.WithDestroy[int](rec.destroy))
	require.NoError(t, err)
	for _, v := range []int{1, 1, 2, 3, 3, 3, 4} {
		require.NoError(t, da.Append(v))
	}

	removed, err := da.RemoveDuplicates(lists.Ordered[int]())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{1, 2, 3, 4}, da.ToSlice())
	assert.Equal(t, []int{1, 3, 3}, rec.got)

	removed, err = da.RemoveDuplicates(lists.Ordered[int]())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDynamicArray_RemoveDuplicatesStrings(t *testing.T) {
	da, err := lists.NewDynamicArray[string](0)
	require.NoError(t, err)
	for _, v := range []string{"a", "a", "a", "b", "c", "c"} {
		require.NoError(t, da.Append(v))
	}
	_, err = da.RemoveDuplicates(lists.Ordered[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, da.ToSlice())
}

func TestDynamicArray_Quickselect(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	cases := map[string][]int{
		"single":     {42},
		"sorted":     {1, 2, 3, 4, 5, 6},
		"reversed":   {6, 5, 4, 3, 2, 1},
		"all equal":  {7, 7, 7, 7, 7},
		"duplicates": {3, 1, 3, 2, 1, 3, 2},
	}
	random := make([]int, 257)
	for i := range random {
		random[i] = r.IntN(100)
	}
	cases["random"] = random

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			sorted := slices.Sorted(slices.Values(src))
			for n := range src {
				da := newArray(t, 0, src...)
				got, err := lists.Quickselect(da, n)
				require.NoError(t, err)
				require.Equal(t, sorted[n], got, "rank %d", n)
				require.Equal(t, src, da.ToSlice(), "array must not be reordered")
			}
		})
	}
}

func TestDynamicArray_QuickselectKeepsSortedOrder(t *testing.T) {
	compare := lists.Ordered[int]()
	da := newArray(t, 0)
	for v := 0; v < 200; v += 10 {
		require.NoError(t, da.Append(v))
	}

	got, err := lists.Quickselect(da, 3)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
	require.True(t, slices.IsSorted(da.ToSlice()))

	idx, err := da.SortedInsert(35, compare)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 4, da.IndexOf(35, compare))
	assert.True(t, slices.IsSorted(da.ToSlice()))

	require.NoError(t, da.InsertAt(5, 35))
	_, err = lists.Quickselect(da, 10)
	require.NoError(t, err)
	removed, err := da.RemoveDuplicates(compare)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestDynamicArray_QuickselectFuncDescending(t *testing.T) {
	da := newArray(t, 0, 4, 9, 1, 7)
	got, err := da.QuickselectFunc(0, lists.Reversed(lists.Ordered[int]()))
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestDynamicArray_QuickselectOutOfRange(t *testing.T) {
	da := newArray(t, 0, 1, 2)
	_, err := lists.Quickselect(da, 2)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
	_, err = lists.Quickselect(da, -1)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
	_, err = da.QuickselectFunc(0, nil)
	assert.ErrorIs(t, err, lists.ErrNilCompare)

	empty := newArray(t, 0)
	_, err = lists.Quickselect(empty, 0)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
}

func TestDynamicArray_Reallocate(t *testing.T) {
	da := newArray(t, 2, 1, 2)

	require.NoError(t, da.Reallocate(1))
	assert.Equal(t, 2, da.Cap(), "shrinking is a no-op")

	require.NoError(t, da.Reallocate(16))
	assert.Equal(t, 16, da.Cap())
	assert.Equal(t, []int{1, 2}, da.ToSlice())
}

func TestDynamicArray_AllocationFailure(t *testing.T) {
	t.Run("impossible size", func(t *testing.T) {
		da := newArray(t, 2, 1, 2)
		err := da.Reallocate(math.MaxInt)
		require.ErrorIs(t, err, lists.ErrAllocationFailed)
		assert.Equal(t, 2, da.Cap())
		assert.Equal(t, []int{1, 2}, da.ToSlice())
	})

	t.Run("capacity limit", func(t *testing.T) {
		da, err := lists.NewDynamicArray[int](2, lists.WithMaxCapacity[int](3))
		require.NoError(t, err)
		require.NoError(t, da.Append(1))
		require.NoError(t, da.Append(2))
		require.NoError(t, da.Append(3))
		assert.Equal(t, 3, da.Cap(), "growth is clamped to the limit")

		err = da.Append(4)
		require.ErrorIs(t, err, lists.ErrAllocationFailed)
		assert.Equal(t, []int{1, 2, 3}, da.ToSlice())
		assert.Equal(t, 3, da.Cap())
	})

	t.Run("initial capacity over limit", func(t *testing.T) {
		_, err := lists.NewDynamicArray[int](8, lists.WithMaxCapacity[int](4))
		assert.ErrorIs(t, err, lists.ErrAllocationFailed)
	})
}

func TestDynamicArray_Terminate(t *testing.T) {
	rec := &recorder[int]{}
	da, err := lists.NewDynamicArray[int](0, lists.WithDestroy[int](rec.destroy))
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, da.Append(v))
	}

	da.Terminate()
	assert.Equal(t, []int{1, 2, 3}, rec.got)
	assert.Zero(t, da.Len())
	assert.Zero(t, da.Cap())

	require.NoError(t, da.Append(4))
	assert.Equal(t, []int{4}, da.ToSlice())
}

func TestDynamicArray_GetSetIterate(t *testing.T) {
	da := newArray(t, 0, 1, 2, 3)

	require.NoError(t, da.Set(1, 20))
	v, err := da.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = da.Get(3)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, da.Set(-1, 0), lists.ErrIndexOutOfBounds)

	assert.Equal(t, []int{1, 20, 3}, slices.Collect(da.Values()))
	for i, v := range da.All() {
		assert.Equal(t, mustGet(t, da, i), v)
	}
	assert.Equal(t, "[1 20 3]", da.String())
}

func TestDynamicArray_NilReceiver(t *testing.T) {
	var da *lists.DynamicArray[int]
	assert.ErrorIs(t, da.Append(1), lists.ErrNilList)
	assert.ErrorIs(t, da.RemoveAt(0), lists.ErrNilList)
	assert.ErrorIs(t, da.Reallocate(4), lists.ErrNilList)
	assert.Equal(t, -1, da.IndexOf(1, lists.Ordered[int]()))

	assert.Zero(t, da.Len())
	assert.Zero(t, da.Cap())
	assert.True(t, da.IsEmpty())
	assert.Equal(t, newArray(t, 1).ElemSize(), da.ElemSize())
	assert.Nil(t, da.ToSlice())
	assert.Empty(t, slices.Collect(da.Values()))
	assert.Equal(t, "[]", da.String())
}

func TestDynamicArray_Diagnostics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	da, err := lists.NewDynamicArray[int](1, lists.WithLogger[int](logger), lists.WithMaxCapacity[int](1))
	require.NoError(t, err)

	err = da.InsertAt(3, 1)
	require.Error(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "dynamic_array", entry.Data["container"])
	assert.Equal(t, "insert_at", entry.Data["op"])
	assert.Equal(t, 3, entry.Data["index"])
	assert.True(t, errors.Is(entry.Data[logrus.ErrorKey].(error), lists.ErrIndexOutOfBounds))

	require.NoError(t, da.Append(1))
	require.ErrorIs(t, da.Append(2), lists.ErrAllocationFailed)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "reallocate", entry.Data["op"])
}
