package vec

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrCapacityOverflow is returned when a requested capacity's byte size
// would overflow the addressable range for the element type.
var ErrCapacityOverflow = errors.New("vec: capacity overflows addressable memory")

// RawMemory owns a fixed-capacity block of storage for elements of type T.
// It never constructs or destroys elements; the owner is responsible for
// tracking which slots hold live values and which are merely reserved.
//
// A RawMemory holding a block must not be duplicated by assignment - two
// owners of one block would both believe they may release it. Transfer
// ownership with Take or exchange blocks with Swap instead.
type RawMemory[T any] struct {
	slots []T // len(slots) == capacity
}

// NewRawMemory reserves storage for capacity elements of type T.
// A capacity of zero reserves nothing. A negative capacity panics.
func NewRawMemory[T any](capacity int) (RawMemory[T], error) {
	if capacity < 0 {
		panic(fmt.Sprintf("vec: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return RawMemory[T]{}, nil
	}
	if elem := int(unsafe.Sizeof(*new(T))); elem > 0 && capacity > math.MaxInt/elem {
		return RawMemory[T]{}, ErrCapacityOverflow
	}
	return RawMemory[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of reserved slots.
func (m *RawMemory[T]) Cap() int {
	return len(m.slots)
}

// Bytes returns the reserved block size in bytes.
func (m *RawMemory[T]) Bytes() int {
	return len(m.slots) * int(unsafe.Sizeof(*new(T)))
}

// At returns the address of slot i. Panics if i is outside the reserved
// capacity - slot addressing never allocates and never grows the block.
func (m *RawMemory[T]) At(i int) *T {
	if i < 0 || i >= len(m.slots) {
		panic(fmt.Sprintf("vec: slot %d out of range [0, %d)", i, len(m.slots)))
	}
	return &m.slots[i]
}

// Swap exchanges the blocks owned by m and other.
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	m.slots, other.slots = other.slots, m.slots
}

// Take transfers ownership of the block out of m, leaving m empty.
func (m *RawMemory[T]) Take() RawMemory[T] {
	out := RawMemory[T]{slots: m.slots}
	m.slots = nil
	return out
}

// Release drops the block. Idempotent. Elements still live in the block
// must have been destroyed by the owner beforehand; Release itself never
// runs element lifecycles.
func (m *RawMemory[T]) Release() {
	m.slots = nil
}
