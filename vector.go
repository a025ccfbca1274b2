package vec

import (
	"fmt"
	"iter"
)

// Vector is a growable contiguous sequence of T built on a RawMemory
// block. Slots [0, Len()) hold live elements; slots [Len(), Cap()) are
// reserved but uninitialized. Not goroutine-safe; callers needing
// concurrent access must add external synchronization.
type Vector[T any] struct {
	funcs    Funcs[T]
	data     RawMemory[T]
	size     int
	byCopy   bool // relocation policy, resolved once at construction
	released bool

	reallocs    int
	relocMoves  int
	relocCopies int
}

// New creates an empty vector (length 0, capacity 0) managing elements
// with the given hook set. Pass Funcs[T]{} for plain value types.
func New[T any](funcs Funcs[T]) *Vector[T] {
	return &Vector[T]{funcs: funcs, byCopy: funcs.relocatesByCopy()}
}

// NewWithSize creates a vector of n value-initialized elements. If an
// Init hook fails partway, every element built by this call is dropped
// and the storage is released before the error is returned.
func NewWithSize[T any](funcs Funcs[T], n int) (*Vector[T], error) {
	v := New[T](funcs)
	data, err := NewRawMemory[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		val, err := funcs.initValue()
		if err != nil {
			v.destroyRange(&data, 0, i)
			data.Release()
			return nil, err
		}
		*data.At(i) = val
	}
	v.data = data
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of reserved slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. The pointer stays valid until the
// next operation that reallocates storage (growth) or until Release.
// Panics if i is outside the live range [0, Len()).
func (v *Vector[T]) At(i int) *T {
	v.panicIfReleased()
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.At(i)
}

// All iterates index/element pairs over the live range.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		v.panicIfReleased()
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// Values iterates element values over the live range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.panicIfReleased()
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Reserve grows capacity to at least n slots. A no-op when n <= Cap().
// On growth, live elements are transferred to the new block under the
// relocation policy; if a copy fails, the vector is unchanged and the
// new block is discarded.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= v.data.Cap() {
		return nil
	}
	newData, err := NewRawMemory[T](n)
	if err != nil {
		return err
	}
	if err := v.relocateRange(&newData, 0, v.size, 0); err != nil {
		newData.Release()
		return err
	}
	v.retireOldBlock(&newData)
	return nil
}

// Resize sets the length to n. Growing reserves storage and
// value-initializes the exposed slots; if an Init hook fails partway,
// the partially built tail is dropped and the length is unchanged
// (capacity may still have grown). Shrinking drops the tail elements.
// Panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	v.panicIfReleased()
	if n < 0 {
		panic(fmt.Sprintf("vec: negative size %d", n))
	}
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			val, err := v.funcs.initValue()
			if err != nil {
				v.destroyRange(&v.data, v.size, i)
				return err
			}
			*v.data.At(i) = val
		}
		v.size = n
	case n < v.size:
		v.destroyRange(&v.data, n, v.size)
		v.size = n
	}
	return nil
}

// PushBack appends val, taking ownership of it, and returns the address
// of the placed element. Amortized O(1): when full, capacity grows to
// max(1, 2*Len()).
func (v *Vector[T]) PushBack(val T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return val, nil })
}

// EmplaceBack appends the element produced by ctor and returns its
// address. On the growth path the new element is built into its final
// slot in the new block before any existing element is relocated, so a
// failed relocation can still discard it cleanly; the old block is
// untouched on any failure. A ctor error leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	v.panicIfReleased()
	if v.size == v.data.Cap() {
		newData, err := v.growBlock()
		if err != nil {
			return nil, err
		}
		val, err := ctor()
		if err != nil {
			newData.Release()
			return nil, err
		}
		*newData.At(v.size) = val
		if err := v.relocateRange(&newData, 0, v.size, 0); err != nil {
			v.funcs.drop(newData.At(v.size))
			newData.Release()
			return nil, err
		}
		v.retireOldBlock(&newData)
	} else {
		val, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.data.At(v.size) = val
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// Append pushes each value in order. On error the values already pushed
// stay in the vector.
func (v *Vector[T]) Append(vals ...T) error {
	for _, val := range vals {
		if _, err := v.PushBack(val); err != nil {
			return err
		}
	}
	return nil
}

// PopBack drops the last element. Panics when the vector is empty.
func (v *Vector[T]) PopBack() {
	v.panicIfReleased()
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	v.funcs.drop(v.data.At(v.size))
}

// Clone returns a deep copy of v sized exactly to its live count. If a
// Copy hook fails partway, the elements already copied are dropped and
// the new storage is released; v is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.panicIfReleased()
	out := New[T](v.funcs)
	data, err := NewRawMemory[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		val, err := v.funcs.copyValue(*v.data.At(i))
		if err != nil {
			v.destroyRange(&data, 0, i)
			data.Release()
			return nil, err
		}
		*data.At(i) = val
	}
	out.data = data
	out.size = v.size
	return out, nil
}

// CopyFrom makes v a deep copy of src. Three paths, chosen to avoid
// needless reallocation:
//
//  1. src does not fit in v's capacity: a full temporary copy is built
//     in a fresh block and swapped in, so a failed copy leaves v
//     untouched. v keeps its own hook set; the copies are made with it.
//  2. src is shorter than v: the overlapping prefix is copy-assigned
//     element-wise and v's tail beyond src's length is dropped.
//  3. otherwise: the prefix is copy-assigned and the remaining new
//     elements are copied into the uninitialized tail; a tail failure
//     drops the part of the tail already built and keeps v's length.
//
// A failed element assignment on paths 2 and 3 leaves the prefix in a
// valid but partially updated state; the unconsumed copy is dropped.
// Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	v.panicIfReleased()
	src.panicIfReleased()
	if v == src {
		return nil
	}
	if v.data.Cap() < src.size {
		data, err := NewRawMemory[T](src.size)
		if err != nil {
			return err
		}
		for i := 0; i < src.size; i++ {
			val, err := v.funcs.copyValue(*src.data.At(i))
			if err != nil {
				v.destroyRange(&data, 0, i)
				data.Release()
				return err
			}
			*data.At(i) = val
		}
		v.destroyRange(&v.data, 0, v.size)
		v.data.Swap(&data)
		data.Release()
		v.size = src.size
		v.reallocs++
		return nil
	}
	prefix := min(v.size, src.size)
	for i := 0; i < prefix; i++ {
		val, err := v.funcs.copyValue(*src.data.At(i))
		if err != nil {
			return err
		}
		if err := v.funcs.assign(v.data.At(i), val); err != nil {
			v.funcs.drop(&val)
			return err
		}
	}
	if src.size < v.size {
		v.destroyRange(&v.data, src.size, v.size)
	} else {
		for i := v.size; i < src.size; i++ {
			val, err := v.funcs.copyValue(*src.data.At(i))
			if err != nil {
				v.destroyRange(&v.data, v.size, i)
				return err
			}
			*v.data.At(i) = val
		}
	}
	v.size = src.size
	return nil
}

// Move transfers v's storage and elements into a new vector, leaving v
// valid and empty (length 0, capacity 0). Never fails.
func (v *Vector[T]) Move() *Vector[T] {
	v.panicIfReleased()
	out := New[T](v.funcs)
	out.data = v.data.Take()
	out.size = v.size
	out.reallocs, out.relocMoves, out.relocCopies = v.reallocs, v.relocMoves, v.relocCopies
	v.size = 0
	v.reallocs, v.relocMoves, v.relocCopies = 0, 0, 0
	return out
}

// MoveFrom move-assigns src into v by swapping storage and length; v's
// previous contents live on in src until src is released or dropped.
// Never fails. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.panicIfReleased()
	src.panicIfReleased()
	v.Swap(src)
}

// Swap exchanges the complete state of v and other. Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.panicIfReleased()
	other.panicIfReleased()
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.funcs, other.funcs = other.funcs, v.funcs
	v.byCopy, other.byCopy = other.byCopy, v.byCopy
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.relocMoves, other.relocMoves = other.relocMoves, v.relocMoves
	v.relocCopies, other.relocCopies = other.relocCopies, v.relocCopies
}

// Clear drops every live element but keeps the reserved storage.
func (v *Vector[T]) Clear() {
	v.panicIfReleased()
	v.destroyRange(&v.data, 0, v.size)
	v.size = 0
}

// Release drops every live element, releases the storage, and makes the
// vector unusable. Idempotent; any other subsequent operation panics.
// Vectors whose elements need no Drop hook may instead be left to the
// garbage collector directly.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	v.destroyRange(&v.data, 0, v.size)
	v.data.Release()
	v.size = 0
	v.released = true
}

// growBlock allocates the next capacity step: max(1, 2*size).
func (v *Vector[T]) growBlock() (RawMemory[T], error) {
	n := v.size * 2
	if n == 0 {
		n = 1
	}
	return NewRawMemory[T](n)
}

// relocateRange transfers live elements [srcLo, srcHi) from v's block
// into dst starting at slot dstLo, under the relocation policy. With
// the copy policy a failure drops only the elements this call already
// placed in dst and reports it; the source range is never modified.
// With the move policy relocation cannot fail and source slots end
// empty.
func (v *Vector[T]) relocateRange(dst *RawMemory[T], srcLo, srcHi, dstLo int) error {
	if v.byCopy {
		for i := srcLo; i < srcHi; i++ {
			val, err := v.funcs.Copy(*v.data.At(i))
			if err != nil {
				v.destroyRange(dst, dstLo, dstLo+(i-srcLo))
				return err
			}
			*dst.At(dstLo + (i - srcLo)) = val
			v.relocCopies++
		}
		return nil
	}
	for i := srcLo; i < srcHi; i++ {
		*dst.At(dstLo + (i - srcLo)) = v.funcs.moveOut(v.data.At(i))
		v.relocMoves++
	}
	return nil
}

// retireOldBlock completes a growth operation: the originals left in the
// old block are destroyed (only the copy policy leaves any - moved-from
// slots are already empty), the blocks are swapped, and the old one is
// released.
func (v *Vector[T]) retireOldBlock(newData *RawMemory[T]) {
	if v.byCopy {
		v.destroyRange(&v.data, 0, v.size)
	}
	v.data.Swap(newData)
	newData.Release()
	v.reallocs++
}

// destroyRange drops slots [lo, hi) of m.
func (v *Vector[T]) destroyRange(m *RawMemory[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		v.funcs.drop(m.At(i))
	}
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
