package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertMiddle(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2, 4))

	// spec scenario: [1 2 4] + insert 3 before 4
	p, err := v.Insert(2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, *p)
	require.Equal(t, []int{1, 2, 3, 4}, elems(v))
	require.Equal(t, 4, v.Len())
}

func TestInsertPositions(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{9, 1, 2, 3}},
		{"middle", 1, []int{1, 9, 2, 3}},
		{"before last", 2, []int{1, 2, 9, 3}},
		{"end", 3, []int{1, 2, 3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int](Funcs[int]{})
			require.NoError(t, v.Append(1, 2, 3))

			p, err := v.Insert(tt.pos, 9)
			require.NoError(t, err)
			require.Equal(t, 9, *p)
			require.Equal(t, tt.want, elems(v))
			checkInvariant(t, v)
		})
	}
}

func TestInsertIntoFullVectorGrows(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2, 3, 4))
	require.Equal(t, v.Cap(), v.Len())

	_, err := v.Insert(2, 9)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 9, 3, 4}, elems(v))
	require.GreaterOrEqual(t, v.Cap(), 8)
}

func TestInsertSelfReferential(t *testing.T) {
	// inserting a value read from the vector itself must survive the
	// shift that overwrites its original slot, on both paths
	t.Run("in place", func(t *testing.T) {
		v := New[int](Funcs[int]{})
		require.NoError(t, v.Reserve(8))
		require.NoError(t, v.Append(1, 2, 3))

		_, err := v.Insert(0, *v.At(2))
		require.NoError(t, err)
		require.Equal(t, []int{3, 1, 2, 3}, elems(v))
	})
	t.Run("growth", func(t *testing.T) {
		v := New[int](Funcs[int]{})
		require.NoError(t, v.Append(1, 2, 3, 4))
		require.Equal(t, v.Cap(), v.Len())

		_, err := v.Insert(0, *v.At(3))
		require.NoError(t, err)
		require.Equal(t, []int{4, 1, 2, 3, 4}, elems(v))
	})
}

func TestInsertPositionOutOfRange(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2, 3))

	require.PanicsWithValue(t, "vec: position 4 out of range [0, 3]", func() {
		_, _ = v.Insert(4, 9)
	})
	require.PanicsWithValue(t, "vec: position -1 out of range [0, 3]", func() {
		_, _ = v.Insert(-1, 9)
	})
}

func TestEmplaceCtorFailureLeavesVectorUnchanged(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Reserve(8))
	require.NoError(t, v.Append(1, 2, 3))

	_, err := v.Emplace(1, func() (int, error) { return 0, errInitFailed })
	require.ErrorIs(t, err, errInitFailed)
	require.Equal(t, []int{1, 2, 3}, elems(v))
}

func TestInsertGrowthFirstSegmentFailure(t *testing.T) {
	st := &hookStats{}
	v := New[int](copyFuncs(st))
	require.NoError(t, v.Append(1, 2, 3, 4))
	require.Equal(t, v.Cap(), v.Len())

	st.reset()
	st.failCopyOn = 1 // fails relocating the prefix
	_, err := v.Insert(2, 9)
	require.ErrorIs(t, err, errCopyFailed)
	require.Equal(t, []int{1, 2, 3, 4}, elems(v))
	require.Equal(t, 4, v.Cap())
	require.Equal(t, 1, st.drops, "only the new element was placed")
}

func TestInsertGrowthSecondSegmentFailure(t *testing.T) {
	st := &hookStats{}
	v := New[int](copyFuncs(st))
	require.NoError(t, v.Append(1, 2, 3, 4))
	require.Equal(t, v.Cap(), v.Len())

	st.reset()
	st.failCopyOn = 3 // prefix [0,2) relocates, first suffix copy fails
	_, err := v.Insert(2, 9)
	require.ErrorIs(t, err, errCopyFailed)
	require.Equal(t, []int{1, 2, 3, 4}, elems(v), "old storage is untouched")
	require.Equal(t, 4, v.Cap())
	require.Equal(t, 3, st.drops, "prefix placements and the new element are discarded")
}

func TestInsertInPlaceAssignFailure(t *testing.T) {
	st := &hookStats{}
	v := New[int](copyFuncs(st))
	require.NoError(t, v.Reserve(8))
	require.NoError(t, v.Append(1, 2, 3, 4))

	st.reset()
	st.failAssignOn = 2 // fails mid-shift
	_, err := v.Insert(1, 9)
	require.ErrorIs(t, err, errAssignFailed)
	require.Equal(t, 5, v.Len(), "the exposed slot still counts as live")
	require.Equal(t, 2, st.drops, "the moved-out value and the temporary are dropped")
	checkInvariant(t, v)

	// the sequence is valid but unspecified; it must remain releasable
	v.Release()
	require.Equal(t, 7, st.drops)
}

func TestInsertShiftFailureReleasesInFlightValues(t *testing.T) {
	tr := newResourceTracker()
	v := New[int](tr.funcs())
	require.NoError(t, v.Reserve(8))
	for i := 0; i < 4; i++ {
		_, err := v.PushBack(tr.create())
		require.NoError(t, err)
	}

	tr.failAssignOn = 2 // fails mid-shift
	_, err := v.Insert(1, tr.create())
	require.ErrorIs(t, err, errAssignFailed)

	v.Release()
	require.Empty(t, tr.live, "every resource must be released exactly once")
}

func TestErase(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2, 3))

	// spec scenario: [1 2 3] - erase the 2
	require.NoError(t, v.Erase(1))
	require.Equal(t, []int{1, 3}, elems(v))
	require.Equal(t, 2, v.Len())
}

func TestErasePositions(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{2, 3, 4}},
		{"middle", 2, []int{1, 2, 4}},
		{"last", 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int](Funcs[int]{})
			require.NoError(t, v.Append(1, 2, 3, 4))

			require.NoError(t, v.Erase(tt.pos))
			require.Equal(t, tt.want, elems(v))
			checkInvariant(t, v)
		})
	}
}

func TestEraseAll(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2, 3))

	for v.Len() > 0 {
		require.NoError(t, v.Erase(0))
	}
	require.Equal(t, 0, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 3, "erasing never releases storage")
}

func TestEraseDropsExactlyOne(t *testing.T) {
	st := &hookStats{}
	v := New[int](copyFuncs(st))
	require.NoError(t, v.Append(1, 2, 3, 4))

	st.reset()
	require.NoError(t, v.Erase(1))
	require.Equal(t, 1, st.drops)
	require.Equal(t, 2, st.assigns, "two elements shift left")
}

func TestEraseAssignFailure(t *testing.T) {
	st := &hookStats{}
	v := New[int](copyFuncs(st))
	require.NoError(t, v.Append(1, 2, 3, 4))

	st.reset()
	st.failAssignOn = 2
	err := v.Erase(0)
	require.ErrorIs(t, err, errAssignFailed)
	require.Equal(t, 4, v.Len(), "length is unchanged on a failed shift")
	require.Equal(t, 2, st.drops, "the erased element and the moved-out value are dropped")
	checkInvariant(t, v)

	v.Release()
}

func TestEraseShiftFailureReleasesInFlightValue(t *testing.T) {
	tr := newResourceTracker()
	v := New[int](tr.funcs())
	require.NoError(t, v.Reserve(8))
	for i := 0; i < 4; i++ {
		_, err := v.PushBack(tr.create())
		require.NoError(t, err)
	}

	tr.failAssignOn = 2 // fails mid-shift
	err := v.Erase(0)
	require.ErrorIs(t, err, errAssignFailed)

	v.Release()
	require.Empty(t, tr.live, "every resource must be released exactly once")
}

func TestErasePositionOutOfRange(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(1, 2))

	require.PanicsWithValue(t, "vec: position 2 out of range [0, 2)", func() {
		_ = v.Erase(2)
	})
	require.PanicsWithValue(t, "vec: position -1 out of range [0, 2)", func() {
		_ = v.Erase(-1)
	})
}

func TestInsertEraseRoundTrip(t *testing.T) {
	v := New[int](Funcs[int]{})
	require.NoError(t, v.Append(0, 1, 2, 3, 4, 5, 6, 7))

	_, err := v.Insert(3, 99)
	require.NoError(t, err)
	require.NoError(t, v.Erase(3))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, elems(v))
}
