package vec

// Funcs customizes element lifecycle management for a Vector. Every field
// is optional; the zero Funcs treats T as a plain value type whose whole
// lifecycle is handled by assignment and the garbage collector.
//
// Hooks exist for element types that own resources beyond their bits -
// file handles, C memory, reference counts - or that must not be
// duplicated by shallow assignment. A hook set is fixed at construction
// and applies to every element of the vector.
type Funcs[T any] struct {
	// Init produces the value placed into slots exposed by NewWithSize
	// and a growing Resize. When nil, new slots hold the zero value.
	Init func() (T, error)

	// Copy produces an independent deep copy of an element. When nil,
	// elements are duplicated by plain assignment.
	Copy func(T) (T, error)

	// Move transfers an element out of src, leaving src empty but
	// reusable. A provided Move is relied on never to fail. When nil,
	// elements move by plain assignment and the source slot is zeroed.
	Move func(src *T) T

	// Assign overwrites a live destination element with src, releasing
	// whatever dst held. When nil, plain assignment is used. A failing
	// Assign must leave dst valid and must not retain src: the vector
	// drops the unconsumed src value itself.
	Assign func(dst *T, src T) error

	// Drop releases resources held by an element. When nil, dropped
	// slots are simply zeroed. Drop must tolerate moved-from (zero or
	// Move-emptied) values.
	Drop func(*T)
}

// relocatesByCopy resolves the relocation policy for the hook set, once
// per vector: when storage grows, are live elements transferred to the
// new block by deep copy or by move?
//
// Move wins whenever it cannot fail - an explicit Move hook, or plain
// bitwise transfer for types with no hooks at all. Only a type that
// deep-copies but declares no move is relocated by Copy: its copies may
// fail, and copying means a failed relocation leaves every original
// element untouched in the old block, so the operation can be rolled
// back without loss.
func (f Funcs[T]) relocatesByCopy() bool {
	return f.Copy != nil && f.Move == nil
}

func (f Funcs[T]) initValue() (T, error) {
	if f.Init != nil {
		return f.Init()
	}
	var zero T
	return zero, nil
}

func (f Funcs[T]) copyValue(v T) (T, error) {
	if f.Copy != nil {
		return f.Copy(v)
	}
	return v, nil
}

// moveOut transfers the value out of src and leaves the slot empty.
// Zeroing the source is what keeps raw storage honest: a moved-from slot
// never aliases live resources, so dropping or overwriting it later is
// always safe.
func (f Funcs[T]) moveOut(src *T) T {
	if f.Move != nil {
		return f.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v
}

func (f Funcs[T]) assign(dst *T, src T) error {
	if f.Assign != nil {
		return f.Assign(dst, src)
	}
	*dst = src
	return nil
}

func (f Funcs[T]) drop(p *T) {
	if f.Drop != nil {
		f.Drop(p)
	}
	var zero T
	*p = zero
}
