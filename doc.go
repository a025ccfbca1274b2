// Package vec implements a generic growable array on top of an
// explicitly owned raw storage block.
//
// # Overview
//
// A Vector is a contiguous, indexable sequence of T with amortized O(1)
// append, positional insert and erase, and explicit capacity control.
// Unlike a plain slice, a Vector separates two concerns that append
// conflates: reserved storage (a RawMemory block of capacity slots) and
// live elements (the prefix [0, Len()) the vector has constructed).
// Every operation reasons about which slots are live, which are merely
// reserved, and what state survives when an element operation fails
// midway. This is useful for:
//
//   - Element types owning external resources (handles, C memory,
//     reference counts) that need deterministic destruction
//   - Element types whose duplication can fail and must report it
//   - Code that needs reserve/resize/insert/erase with documented
//     failure guarantees rather than append's all-or-nothing panic
//
// # Basic Usage
//
//	v := vec.New[int](vec.Funcs[int]{})
//	v.Append(1, 2, 3)
//
//	p := v.At(1)    // address of element 1
//	v.Insert(1, 9)  // [1 9 2 3]
//	v.Erase(0)      // [9 2 3]
//
//	for i, e := range v.All() {
//		fmt.Println(i, *e)
//	}
//
// # Element Lifecycle Hooks
//
// A Funcs[T] value, fixed at construction, tells the vector how to
// initialize, copy, move, assign, and drop elements. All hooks are
// optional; plain value types need none. Copy, Assign, and Init may
// fail, and every vector operation that can invoke them returns an
// error honoring a documented state contract (see Error Handling).
//
// When storage grows, live elements relocate to the new block by move
// whenever moving cannot fail (an explicit Move hook, or no hooks at
// all) and by deep copy only for types that define Copy without Move.
// Copy relocation keeps the old block's elements intact until the whole
// transfer succeeds, so a failed relocation rolls back completely.
//
// # Error Handling
//
// Growth paths (Reserve, a growing PushBack/EmplaceBack/Insert/Emplace,
// CopyFrom into too-small storage, Clone) leave the vector unchanged
// when they fail. In-place shifts (Erase, non-growing Insert) fail only
// through a failing Assign hook and then leave a valid but unspecified
// sequence. Invalid arguments - an out-of-range index or position,
// PopBack on an empty vector, use after Release - are programmer errors
// and panic.
//
// # Ownership and Moves
//
// A vector exclusively owns its storage block; blocks are never shared.
// Move transfers the block to a new vector and empties the source;
// MoveFrom and Swap exchange state; moved-out element slots are always
// zeroed so no resource can end up owned twice.
//
// PushBack and Insert take their argument by value and materialize it
// before any element is shifted or relocated, so inserting a value read
// from the same vector is safe on every path.
//
// # Thread Safety
//
// A Vector is not goroutine-safe and starts no background work; all
// operations complete before returning. Callers sharing a vector across
// goroutines must add their own synchronization.
//
// # Metrics and Monitoring
//
// The vector tracks its storage behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocs)
//
// Reallocs together with the RelocatedByMove/RelocatedByCopy counters
// makes the amortized-doubling growth directly observable.
package vec
