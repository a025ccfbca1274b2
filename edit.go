package vec

import "fmt"

// Insert places val at position i, shifting elements [i, Len()) one slot
// right, and returns the address of the inserted element. i may be
// Len(), which appends. Panics if i is outside [0, Len()].
func (v *Vector[T]) Insert(i int, val T) (*T, error) {
	return v.Emplace(i, func() (T, error) { return val, nil })
}

// Emplace inserts the element produced by ctor at position i.
//
// When storage must grow, the new element is built into its final slot
// in the new block first, then the old elements are relocated in two
// independent segments - [0, i) and [i, Len()) - each with its own
// cleanup, so any failure discards only what was already placed in the
// new block and the old storage is never modified.
//
// When the element fits in place and i < Len(), ctor runs before any
// element is touched (its result is held in a temporary, so an argument
// referring into this same vector stays safe), the last element is
// moved into the newly exposed slot, the run [i, Len()-1) is shifted
// right by backward move-assignment, and the temporary is assigned into
// position. A failed assignment mid-shift leaves the sequence valid but
// unspecified; every slot remains live and droppable, and the in-flight
// temporary is dropped rather than leaked.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	v.panicIfReleased()
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d]", i, v.size))
	}
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
		*newData.At(i) = val
		if err := v.relocateRange(&newData, 0, i, 0); err != nil {
			v.funcs.drop(newData.At(i))
			newData.Release()
			return nil, err
		}
		if err := v.relocateRange(&newData, i, v.size, i+1); err != nil {
			v.destroyRange(&newData, 0, i)
			v.funcs.drop(newData.At(i))
			newData.Release()
			return nil, err
		}
		v.retireOldBlock(&newData)
		v.size++
		return v.data.At(i), nil
	}
	val, err := ctor()
	if err != nil {
		return nil, err
	}
	if i == v.size {
		*v.data.At(v.size) = val
		v.size++
		return v.data.At(i), nil
	}
	*v.data.At(v.size) = v.funcs.moveOut(v.data.At(v.size - 1))
	v.size++ // the exposed slot is live from here on
	for j := v.size - 2; j > i; j-- {
		if err := v.moveAssignSlot(j, j-1); err != nil {
			v.funcs.drop(&val)
			return nil, err
		}
	}
	if err := v.funcs.assign(v.data.At(i), val); err != nil {
		v.funcs.drop(&val)
		return nil, err
	}
	return v.data.At(i), nil
}

// Erase drops the element at position i and shifts elements [i+1, Len())
// one slot left by move-assignment. On success i is the position of the
// element that followed the erased one, or Len() when the last element
// was erased. Fails only if an Assign hook fails, in which case the length
// is unchanged and the sequence is valid but unspecified. Panics if i is
// outside [0, Len()).
func (v *Vector[T]) Erase(i int) error {
	v.panicIfReleased()
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d)", i, v.size))
	}
	v.funcs.drop(v.data.At(i))
	for j := i; j < v.size-1; j++ {
		if err := v.moveAssignSlot(j, j+1); err != nil {
			return err
		}
	}
	// the final move-assignment emptied the trailing slot
	v.size--
	return nil
}

// moveAssignSlot move-assigns the element in slot src over the one in
// slot dst. The source slot ends empty either way; if the assignment
// fails, the moved-out value is dropped so it cannot leak.
func (v *Vector[T]) moveAssignSlot(dst, src int) error {
	val := v.funcs.moveOut(v.data.At(src))
	if err := v.funcs.assign(v.data.At(dst), val); err != nil {
		v.funcs.drop(&val)
		return err
	}
	return nil
}
